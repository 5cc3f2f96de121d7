package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saunaguide/saunaguide-server/internal/domain"
)

const testSaunasJSON = `{
  "saunas": [
    {
      "id": "loyly-helsinki",
      "name": "Löyly",
      "location": {"city": "Helsinki", "country": "Finland", "coordinates": {"lat": 60.15, "lng": 24.92}},
      "type": "public",
      "features": ["waterfront", "smoke sauna", "restaurant", "sea swimming"],
      "priceRange": "$$",
      "website": "https://loylyhelsinki.fi",
      "description": "Architectural waterfront sauna in Helsinki.",
      "images": ["loyly-1.jpg"],
      "rating": 4.7
    },
    {
      "id": "secret-cellar",
      "name": "Secret Cellar Sauna",
      "location": {"city": "Tallinn", "country": "Estonia"},
      "type": "private",
      "features": ["wood-fired"],
      "priceRange": "$",
      "description": "A tiny cellar sauna.",
      "images": []
    }
  ]
}`

func loadTestSaunas(t *testing.T) *Directory {
	t.Helper()

	path := filepath.Join(t.TempDir(), "saunas.json")
	require.NoError(t, os.WriteFile(path, []byte(testSaunasJSON), 0644))

	d, err := Load(path, nil)
	require.NoError(t, err)
	return d
}

func TestLoad_MalformedJSONIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saunas.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"saunas": `), 0644))

	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestByID(t *testing.T) {
	d := loadTestSaunas(t)

	loyly, ok := d.ByID("loyly-helsinki")
	require.True(t, ok)
	assert.Equal(t, "Löyly", loyly.Name)
	assert.Equal(t, "Finland", loyly.Location.Country)
	require.NotNil(t, loyly.Location.Coordinates)
	assert.InDelta(t, 60.15, loyly.Location.Coordinates.Lat, 0.001)

	_, ok = d.ByID("nope")
	assert.False(t, ok)
}

func TestFilters(t *testing.T) {
	d := loadTestSaunas(t)

	assert.Len(t, d.All(), 2)

	public := d.ByType(domain.SaunaPublic)
	require.Len(t, public, 1)
	assert.Equal(t, "loyly-helsinki", public[0].ID)

	estonia := d.ByCountry("estonia")
	require.Len(t, estonia, 1)
	assert.Equal(t, "secret-cellar", estonia[0].ID)
}
