// Package main provides the gear catalog migration tool.
//
// It backfills slugs, converts legacy single-link products to the
// purchaseLinks format, and refreshes the catalog's lastUpdated stamp. The
// transform is idempotent and safe to rerun.
//
// Usage:
//
//	go run ./cmd/migrate
//	go run ./cmd/migrate -file src/data/gear-merged.json
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/saunaguide/saunaguide-server/internal/logger"
	"github.com/saunaguide/saunaguide-server/internal/migrate"
)

var filePath = flag.String("file", "", "Path to the gear catalog JSON file (default $DATA_PATH/gear-merged.json)")

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

	l := logger.New(logger.Config{Environment: "development", Level: slog.LevelInfo})

	fmt.Printf("Migrating catalog at: %s\n", path)

	summary, err := migrate.New(l.Logger).Run(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Migrated %d products to new structure\n", summary.LinksConverted)
	fmt.Printf("Slugs added: %d\n", summary.SlugsAdded)
	fmt.Printf("Total products: %d\n", summary.TotalProducts)
	fmt.Printf("Unique slugs: %d\n", summary.UniqueSlugs)
	fmt.Println(strings.Repeat("=", 50))
}
