// Package guides lists the MDX article directory and parses each file's
// YAML frontmatter. Guides feed the guide API and the sitemap.
package guides

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

const mdxExt = ".mdx"

var frontmatterDelim = []byte("---")

// frontmatter is the YAML header of a guide file.
type frontmatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
}

// Library is the immutable guide collection.
type Library struct {
	guides []domain.Guide
	bySlug map[string]int
}

// Load lists every .mdx file in dir, newest mod time first. A guide with
// missing or malformed frontmatter degrades to its filename-derived slug
// rather than failing the whole directory.
func Load(dir string, logger *slog.Logger) (*Library, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read guides directory: %w", err)
	}

	lib := &Library{bySlug: make(map[string]int)}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), mdxExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			logger.Warn("skipping unreadable guide", "file", entry.Name(), "error", err)
			continue
		}

		g := domain.Guide{
			Slug:    strings.TrimSuffix(entry.Name(), mdxExt),
			ModTime: info.ModTime(),
		}

		fm, err := readFrontmatter(filepath.Join(dir, entry.Name()))
		if err != nil {
			logger.Warn("guide frontmatter unreadable", "file", entry.Name(), "error", err)
		} else if fm != nil {
			g.Title = fm.Title
			g.Description = fm.Description
			g.Date = fm.Date
			g.Author = fm.Author
			g.Tags = fm.Tags
		}
		if g.Title == "" {
			g.Title = titleFromSlug(g.Slug)
		}

		lib.guides = append(lib.guides, g)
	}

	// Newest first, matching the sitemap ordering guarantee.
	sort.SliceStable(lib.guides, func(i, j int) bool {
		return lib.guides[i].ModTime.After(lib.guides[j].ModTime)
	})
	for i, g := range lib.guides {
		if _, seen := lib.bySlug[g.Slug]; !seen {
			lib.bySlug[g.Slug] = i
		}
	}

	logger.Info("guides loaded", "dir", dir, "guides", len(lib.guides))

	return lib, nil
}

// All returns every guide, newest first.
func (l *Library) All() []domain.Guide {
	out := make([]domain.Guide, len(l.guides))
	copy(out, l.guides)
	return out
}

// BySlug returns the guide with the given slug.
func (l *Library) BySlug(slug string) (domain.Guide, bool) {
	i, ok := l.bySlug[slug]
	if !ok {
		return domain.Guide{}, false
	}
	return l.guides[i], true
}

// readFrontmatter parses the leading YAML block of an MDX file.
// Returns nil when the file has no frontmatter at all.
func readFrontmatter(path string) (*frontmatter, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- guide paths come from the configured directory
	if err != nil {
		return nil, err
	}

	rest, ok := bytes.CutPrefix(data, frontmatterDelim)
	if !ok {
		return nil, nil
	}
	rest, ok = bytes.CutPrefix(rest, []byte("\n"))
	if !ok {
		return nil, nil
	}

	end := bytes.Index(rest, append([]byte("\n"), frontmatterDelim...))
	if end < 0 {
		return nil, fmt.Errorf("unterminated frontmatter")
	}

	var fm frontmatter
	if err := yaml.Unmarshal(rest[:end], &fm); err != nil {
		return nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return &fm, nil
}

// titleFromSlug produces a display title for guides without frontmatter.
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
