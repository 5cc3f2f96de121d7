package sitemap

import (
	"encoding/xml"
	"time"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

const urlsetNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

// RenderXML serializes entries into the sitemaps.org urlset format.
func RenderXML(entries []domain.SitemapEntry) ([]byte, error) {
	set := xmlURLSet{
		Xmlns: urlsetNamespace,
		URLs:  make([]xmlURL, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, xmlURL{
			Loc:        e.URL,
			LastMod:    e.LastModified.Format(time.RFC3339),
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   e.Priority,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
