package domain

import "time"

// Guide is an article sourced from an MDX file in the guides directory.
// The slug is the filename without extension.
type Guide struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date,omitempty"` // authored date from frontmatter, ISO day
	Author      string    `json:"author,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	ModTime     time.Time `json:"modTime"` // file mtime, drives sitemap lastModified
}
