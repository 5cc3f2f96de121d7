package validation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Report is the outcome of a catalog validation run. Errors are violations
// of required-field, type, or uniqueness invariants; warnings flag missing
// enrichment (images, purchase links) that degrades but does not break pages.
type Report struct {
	Categories int
	Products   int
	Errors     []string
	Warnings   []string
}

// OK reports whether the catalog passed. Warnings never fail a run.
func (r Report) OK() bool {
	return len(r.Errors) == 0
}

// checkedLink carries the validator/v10 rules for one purchase link.
type checkedLink struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
	Type string `json:"type" validate:"required,oneof=amazon manufacturer retailer"`
}

// gearFile mirrors the raw catalog shape without normalization, so the
// checker sees exactly what is on disk, pre- or post-migration.
type gearFile struct {
	Categories []struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Products *[]struct {
			Slug          string        `json:"slug"`
			Name          string        `json:"name"`
			Brand         string        `json:"brand"`
			Price         string        `json:"price"`
			Description   string        `json:"description"`
			Why           string        `json:"why"`
			Image         string        `json:"image"`
			PurchaseLinks []checkedLink `json:"purchaseLinks"`
		} `json:"products"`
	} `json:"categories"`
}

// GearChecker validates the gear catalog file.
type GearChecker struct {
	validator *Validator
	publicDir string
}

// NewGearChecker creates a checker. publicDir is the web root used to verify
// that site-relative image paths exist on disk; empty disables the check.
func NewGearChecker(publicDir string) *GearChecker {
	return &GearChecker{validator: New(), publicDir: publicDir}
}

// Run validates the catalog at path. It returns an error only when the file
// cannot be read or parsed; shape violations land in the report instead.
func (c *GearChecker) Run(path string) (Report, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- path comes from the operator
	if err != nil {
		return Report{}, fmt.Errorf("read catalog: %w", err)
	}

	var file gearFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Report{}, fmt.Errorf("parse catalog: %w", err)
	}

	var report Report
	report.Categories = len(file.Categories)
	slugs := make(map[string]bool)

	for _, category := range file.Categories {
		if category.ID == "" {
			report.Errors = append(report.Errors, "Category missing id: "+category.Name)
		}
		if category.Name == "" {
			report.Errors = append(report.Errors, "Category missing name: "+category.ID)
		}
		if category.Products == nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Category %s has no products array", category.ID))
			continue
		}

		for _, product := range *category.Products {
			name := product.Name
			if name == "" {
				name = "UNNAMED"
			}
			ctx := fmt.Sprintf("[%s/%s]", category.ID, name)

			c.checkRequired(&report, ctx, []requiredField{
				{"slug", product.Slug},
				{"name", product.Name},
				{"brand", product.Brand},
				{"price", product.Price},
				{"description", product.Description},
				{"why", product.Why},
			})

			if product.Slug != "" {
				if slugs[product.Slug] {
					report.Errors = append(report.Errors, fmt.Sprintf("%s Duplicate slug: %s", ctx, product.Slug))
				}
				slugs[product.Slug] = true
			}

			c.checkPurchaseLinks(&report, ctx, product.PurchaseLinks)
			c.checkImage(&report, ctx, product.Image)
		}
	}

	report.Products = len(slugs)
	return report, nil
}

type requiredField struct {
	name  string
	value string
}

func (c *GearChecker) checkRequired(report *Report, ctx string, fields []requiredField) {
	for _, f := range fields {
		if f.value == "" {
			report.Errors = append(report.Errors, fmt.Sprintf("%s Missing %s", ctx, f.name))
		}
	}
}

func (c *GearChecker) checkPurchaseLinks(report *Report, ctx string, links []checkedLink) {
	if len(links) == 0 {
		report.Warnings = append(report.Warnings, ctx+" No purchase links")
		return
	}

	for i, link := range links {
		fieldErrors, err := c.validator.FieldErrors(link)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("%s Purchase link %d: %v", ctx, i, err))
			continue
		}
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			report.Errors = append(report.Errors, fmt.Sprintf("%s Purchase link %d: %s %s", ctx, i, field, fieldErrors[field]))
		}
	}
}

func (c *GearChecker) checkImage(report *Report, ctx, image string) {
	if image == "" {
		report.Warnings = append(report.Warnings, ctx+" No image")
		return
	}
	if c.publicDir == "" || !strings.HasPrefix(image, "/images/") {
		return
	}
	imagePath := filepath.Join(c.publicDir, filepath.FromSlash(image))
	if _, err := os.Stat(imagePath); err != nil {
		report.Warnings = append(report.Warnings, fmt.Sprintf("%s Image file not found: %s", ctx, imagePath))
	}
}
