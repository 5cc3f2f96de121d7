// Package directory loads the sauna directory listings. The core reads
// them as-is; listings are never transformed.
package directory

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

// rawFile is the top-level shape of saunas.json.
type rawFile struct {
	Saunas []domain.Sauna `json:"saunas"`
}

// Directory is the immutable sauna listing collection.
type Directory struct {
	saunas []domain.Sauna
	byID   map[string]int
}

// Load parses the saunas file. Malformed JSON is fatal.
func Load(path string, logger *slog.Logger) (*Directory, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- data file path comes from config
	if err != nil {
		return nil, fmt.Errorf("read saunas: %w", err)
	}

	var raw rawFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse saunas %s: %w", path, err)
	}

	d := &Directory{
		saunas: raw.Saunas,
		byID:   make(map[string]int, len(raw.Saunas)),
	}
	for i, s := range d.saunas {
		if _, seen := d.byID[s.ID]; !seen {
			d.byID[s.ID] = i
		}
	}

	logger.Info("sauna directory loaded", "path", path, "saunas", len(d.saunas))

	return d, nil
}

// All returns every listing in authored order.
func (d *Directory) All() []domain.Sauna {
	out := make([]domain.Sauna, len(d.saunas))
	copy(out, d.saunas)
	return out
}

// ByID returns the listing with the given id.
func (d *Directory) ByID(id string) (domain.Sauna, bool) {
	i, ok := d.byID[id]
	if !ok {
		return domain.Sauna{}, false
	}
	return d.saunas[i], true
}

// ByType returns listings of the given venue type in authored order.
func (d *Directory) ByType(t domain.SaunaType) []domain.Sauna {
	var out []domain.Sauna
	for _, s := range d.saunas {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}

// ByCountry returns listings in the given country, case-insensitive.
func (d *Directory) ByCountry(country string) []domain.Sauna {
	var out []domain.Sauna
	for _, s := range d.saunas {
		if strings.EqualFold(s.Location.Country, country) {
			out = append(out, s)
		}
	}
	return out
}
