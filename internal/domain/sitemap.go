package domain

import "time"

// ChangeFrequency is the sitemaps.org changefreq token.
type ChangeFrequency string

const (
	FrequencyDaily   ChangeFrequency = "daily"
	FrequencyWeekly  ChangeFrequency = "weekly"
	FrequencyMonthly ChangeFrequency = "monthly"
	FrequencyYearly  ChangeFrequency = "yearly"
)

// Valid reports whether the change frequency is a recognized value.
func (f ChangeFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// SitemapEntry describes one crawlable URL for search-engine consumption.
// Entries are derived at build time and never persisted.
type SitemapEntry struct {
	URL             string          `json:"url"`
	LastModified    time.Time       `json:"lastModified"`
	ChangeFrequency ChangeFrequency `json:"changeFrequency"`
	Priority        float64         `json:"priority"` // 0.0-1.0
}
