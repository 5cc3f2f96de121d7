package domain

// ManufacturerType buckets a brand by the kind of sauna it builds.
type ManufacturerType string

const (
	ManufacturerTraditional ManufacturerType = "traditional"
	ManufacturerInfrared    ManufacturerType = "infrared"
	ManufacturerBarrel      ManufacturerType = "barrel"
	ManufacturerBarrelCabin ManufacturerType = "barrel-cabin"
	ManufacturerOutdoor     ManufacturerType = "outdoor"
	ManufacturerLuxury      ManufacturerType = "luxury"
	ManufacturerRedLight    ManufacturerType = "red-light"
	ManufacturerPortable    ManufacturerType = "portable"
)

// Valid reports whether the manufacturer type is a recognized value.
func (t ManufacturerType) Valid() bool {
	switch t {
	case ManufacturerTraditional, ManufacturerInfrared, ManufacturerBarrel,
		ManufacturerBarrelCabin, ManufacturerOutdoor, ManufacturerLuxury,
		ManufacturerRedLight, ManufacturerPortable:
		return true
	}
	return false
}

// Label returns the display name used on directory pages.
func (t ManufacturerType) Label() string {
	switch t {
	case ManufacturerTraditional:
		return "Traditional Finnish"
	case ManufacturerInfrared:
		return "Infrared"
	case ManufacturerBarrel:
		return "Barrel Saunas"
	case ManufacturerBarrelCabin:
		return "Barrel & Cabin"
	case ManufacturerOutdoor:
		return "Outdoor"
	case ManufacturerLuxury:
		return "Luxury"
	case ManufacturerRedLight:
		return "Red Light / Biohacking"
	case ManufacturerPortable:
		return "Portable & Budget"
	default:
		return string(t)
	}
}

// SocialHandles holds a brand's social media accounts.
type SocialHandles struct {
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// Manufacturer is a sauna brand in the directory.
type Manufacturer struct {
	Name    string           `json:"name"`
	Slug    string           `json:"slug"` // derived from Name
	Country string           `json:"country"`
	Founded int              `json:"founded,omitempty"` // year, 0 when unknown
	Website string           `json:"website"`
	Type    ManufacturerType `json:"type"`

	Products []string `json:"products"` // product-type tags, e.g. "heaters"
	Market   string   `json:"market"`

	Public bool   `json:"public,omitempty"`
	Stock  string `json:"stock,omitempty"`
	OwnedBy string `json:"owned_by,omitempty"`

	UniqueAngle          string         `json:"unique_angle"`
	ContentOpportunities []string       `json:"content_opportunities"`
	Social               *SocialHandles `json:"social,omitempty"`
	PartnershipStatus    string         `json:"partnership_status,omitempty"`
	Notes                string         `json:"notes,omitempty"`

	// Logo is resolved from the static brand→logo map; empty when the
	// brand has no logo asset.
	Logo string `json:"logo,omitempty"`
}

// TypeCount pairs a manufacturer type with how many brands carry it.
type TypeCount struct {
	Type  ManufacturerType `json:"type"`
	Count int              `json:"count"`
	Label string           `json:"label"`
}
