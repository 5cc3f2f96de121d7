// Package slug derives URL-safe identifiers from display names.
// The slug is the source of truth for product and brand identity.
package slug

import (
	"regexp"
	"strings"
)

var (
	// Matches runs of characters that cannot appear in a slug.
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9]+`)
	// Matches multiple consecutive dashes.
	multipleDashRe = regexp.MustCompile(`-+`)
)

// maxFilenameLen caps slugs used as filenames. Catalog identifiers are
// never capped, so two long names cannot collide by truncation.
const maxFilenameLen = 50

// Make converts a display name to a canonical slug.
//
// Rules:
//  1. Lowercase
//  2. Replace every run of non-alphanumeric characters with a dash
//  3. Collapse multiple dashes
//  4. Trim leading/trailing dashes
//
// Examples:
//
//	"KOLO Bucket and Ladle Set" → "kolo-bucket-and-ladle-set"
//	"100-Gallon Stock Tank"     → "100-gallon-stock-tank"
//	"by itu Sauna Hat"          → "by-itu-sauna-hat"
//
// An input with no alphanumeric characters yields the empty string;
// callers must treat that as invalid.
func Make(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumericRe.ReplaceAllString(s, "-")
	s = multipleDashRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// Filename is Make truncated to a filesystem-safe length. Only for
// generated asset filenames, never for catalog identifiers.
func Filename(name string) string {
	s := Make(name)
	if len(s) > maxFilenameLen {
		s = strings.TrimRight(s[:maxFilenameLen], "-")
	}
	return s
}
