// Command migrate converts a meal planner document file from the legacy
// weekly plan shape to the current one. The server does this on startup
// as well; the command exists for migrating files out of band.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"github.com/McFlayr/meal-planner/internal/migrate"
	"github.com/McFlayr/meal-planner/internal/store"
)

func main() {
	dataFile := flag.String("data", "meal_planner_data.json", "path to the document file")
	flag.Parse()

	fileStore, err := store.NewFileStore(*dataFile)
	if err != nil {
		log.Fatalf("failed to open document store: %v", err)
	}

	raw, exists, err := fileStore.Read()
	if err != nil {
		log.Fatalf("failed to read document: %v", err)
	}
	if !exists {
		log.Fatalf("document file %s does not exist", *dataFile)
	}

	doc, migrated, err := migrate.Parse(raw)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if !migrated {
		fmt.Printf("document %s is already in the current format\n", *dataFile)
		return
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal migrated document: %v", err)
	}
	if err := fileStore.Write(data); err != nil {
		log.Fatalf("failed to write migrated document: %v", err)
	}
	fmt.Printf("migrated %s to the current format\n", *dataFile)
}
