// Package main provides the gear catalog validation tool.
//
// It checks required fields, slug uniqueness across the whole catalog, and
// purchase link shape (errors), and flags missing images or purchase links
// (warnings). The process exits non-zero only when errors are found.
//
// Usage:
//
//	go run ./cmd/validate
//	go run ./cmd/validate -file src/data/gear-merged.json -public public
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/saunaguide/saunaguide-server/internal/validation"
)

const maxWarningsShown = 20

var (
	filePath  = flag.String("file", "", "Path to the gear catalog JSON file (default $DATA_PATH/gear-merged.json)")
	publicDir = flag.String("public", "public", "Web root used to verify site-relative image paths")
)

func main() {
	flag.Parse()

	path := *filePath
	if path == "" {
		dataPath := os.Getenv("DATA_PATH")
		if dataPath == "" {
			dataPath = "data"
		}
		path = dataPath + "/gear-merged.json"
	}

	fmt.Println("Validating gear data...")
	fmt.Println()

	report, err := validation.NewGearChecker(*publicDir).Run(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Validation aborted: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("Validation Results")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Categories: %d\n", report.Categories)
	fmt.Printf("Products: %d\n", report.Products)
	fmt.Printf("Errors: %d\n", len(report.Errors))
	fmt.Printf("Warnings: %d\n", len(report.Warnings))
	fmt.Println(strings.Repeat("=", 50))

	if len(report.Errors) > 0 {
		fmt.Println("\nERRORS:")
		for _, e := range report.Errors {
			fmt.Printf("  [ERROR] %s\n", e)
		}
	}

	if len(report.Warnings) > 0 {
		fmt.Println("\nWARNINGS:")
		shown := report.Warnings
		if len(shown) > maxWarningsShown {
			shown = shown[:maxWarningsShown]
		}
		for _, w := range shown {
			fmt.Printf("  [WARN] %s\n", w)
		}
		if extra := len(report.Warnings) - maxWarningsShown; extra > 0 {
			fmt.Printf("  ... and %d more\n", extra)
		}
	}

	if !report.OK() {
		fmt.Println("\nValidation failed with errors")
		os.Exit(1)
	}
	fmt.Println("\nAll validations passed!")
}
