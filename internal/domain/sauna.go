package domain

// SaunaType classifies a directory listing by venue.
type SaunaType string

const (
	SaunaPublic  SaunaType = "public"
	SaunaPrivate SaunaType = "private"
	SaunaHotel   SaunaType = "hotel"
	SaunaSpa     SaunaType = "spa"
)

// Valid reports whether the sauna type is a recognized value.
func (t SaunaType) Valid() bool {
	switch t {
	case SaunaPublic, SaunaPrivate, SaunaHotel, SaunaSpa:
		return true
	}
	return false
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location places a sauna in the world.
type Location struct {
	City        string       `json:"city"`
	Country     string       `json:"country"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// Sauna is one entry in the sauna directory. Listings are read as-is
// from the data file; the core never transforms them.
type Sauna struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    Location  `json:"location"`
	Type        SaunaType `json:"type"`
	Features    []string  `json:"features"`
	PriceRange  string    `json:"priceRange"` // "$", "$$" or "$$$"
	Website     string    `json:"website,omitempty"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Rating      float64   `json:"rating,omitempty"`
}
