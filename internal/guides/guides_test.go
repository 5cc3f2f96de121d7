package guides

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGuide(t *testing.T, dir, name, content string, mtime time.Time) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	writeGuide(t, dir, "sauna-temperature-guide.mdx", `---
title: "What Temperature Should a Sauna Be?"
description: "Target ranges for every sauna type."
date: "2026-02-10"
author: "Sauna Guide Team"
tags:
  - basics
  - temperature
---

Body text.
`, base.Add(48*time.Hour))

	writeGuide(t, dir, "barrel-sauna-maintenance.mdx", `---
title: "Barrel Sauna Maintenance"
description: "Seasonal care for outdoor barrels."
date: "2026-01-05"
---

Body text.
`, base)

	// No frontmatter at all: keeps the file, derives a title.
	writeGuide(t, dir, "loyly-etiquette.mdx", "Just body text.\n", base.Add(24*time.Hour))

	// Broken YAML degrades to filename-derived fields.
	writeGuide(t, dir, "broken-frontmatter.mdx", "---\ntitle: [unclosed\n---\nBody.\n", base.Add(-24*time.Hour))

	// Non-MDX files are ignored.
	writeGuide(t, dir, "notes.txt", "scratch", base)

	lib, err := Load(dir, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	all := lib.All()
	require.Len(t, all, 4)

	// Newest modification time first.
	assert.Equal(t, "sauna-temperature-guide", all[0].Slug)
	assert.Equal(t, "loyly-etiquette", all[1].Slug)
	assert.Equal(t, "barrel-sauna-maintenance", all[2].Slug)
	assert.Equal(t, "broken-frontmatter", all[3].Slug)

	g, ok := lib.BySlug("sauna-temperature-guide")
	require.True(t, ok)
	assert.Equal(t, "What Temperature Should a Sauna Be?", g.Title)
	assert.Equal(t, "Target ranges for every sauna type.", g.Description)
	assert.Equal(t, "2026-02-10", g.Date)
	assert.Equal(t, "Sauna Guide Team", g.Author)
	assert.Equal(t, []string{"basics", "temperature"}, g.Tags)

	g, ok = lib.BySlug("loyly-etiquette")
	require.True(t, ok)
	assert.Equal(t, "Loyly Etiquette", g.Title)
	assert.Empty(t, g.Description)

	g, ok = lib.BySlug("broken-frontmatter")
	require.True(t, ok)
	assert.Equal(t, "Broken Frontmatter", g.Title)

	_, ok = lib.BySlug("notes")
	assert.False(t, ok)
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"), nil)
	assert.Error(t, err)
}
