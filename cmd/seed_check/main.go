// Command seed_check validates a directory of seed files against the same
// schemas and rules the server applies at startup. With -export it also
// writes the full catalog as a spreadsheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"rurallearn/internal/config"
	"rurallearn/internal/export"
	"rurallearn/internal/logger"
	"rurallearn/internal/seed"

	"go.uber.org/zap"
)

func main() {
	dir := flag.String("dir", "", "directory holding library.yaml, quiz.yaml, classroom.yaml and landing.yaml (default: the embedded seed)")
	exportPath := flag.String("export", "", "write the catalog to this .xlsx file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	var catalog *seed.Catalog
	if *dir == "" {
		log.Info("Checking embedded seed data")
		catalog, err = seed.Default()
	} else {
		log.Info("Checking seed data", zap.String("dir", *dir))
		catalog, err = seed.Load(os.DirFS(*dir))
	}
	if err != nil {
		log.Fatal("Seed data is invalid", zap.Error(err))
	}

	log.Info("Seed data is valid",
		zap.Int("subjects", len(catalog.Subjects)),
		zap.Int("content_items", len(catalog.Content)),
		zap.Int("quiz_questions", catalog.Quiz.Total()),
		zap.Int("materials", len(catalog.Classroom.Materials)),
		zap.Int("features", len(catalog.Landing.Features)),
	)

	if *exportPath == "" {
		return
	}
	f, err := os.Create(*exportPath)
	if err != nil {
		log.Fatal("Failed to create export file", zap.String("path", *exportPath), zap.Error(err))
	}
	defer f.Close()
	if err := export.WriteCatalog(f, catalog.Content, "", "all"); err != nil {
		log.Fatal("Failed to write catalog", zap.Error(err))
	}
	log.Info("Catalog exported", zap.String("path", *exportPath))
}
