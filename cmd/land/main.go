// Command land runs the bronze landing stage: it copies the source
// spreadsheet into the date-partitioned raw location, idempotently, and
// marks completion.
package main

import (
	"log"
	"os"
	"time"

	"milagros/internal"
	"milagros/internal/config"
	"milagros/internal/landing"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// "Today" is resolved here, once, and threaded down as a value.
	cfg, err := config.Load(time.Now())
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	logger.Info("RAW_BASE_PATH=%s", cfg.Landing.RawBasePath)
	logger.Info("INGEST_DATE=%s", cfg.IngestDate)
	logger.Info("SOURCE_XLSX_PATH=%s", cfg.Landing.SourcePath)

	stage := landing.NewStage(cfg.Landing.SourcePath, cfg.Landing.RawBasePath, cfg.IngestDate, logger)
	result, err := stage.Run()
	if err != nil {
		logger.Error("landing failed: %v", err)
		os.Exit(1)
	}

	if result.Skipped {
		logger.Info("nothing to do: %s and %s already exist", result.Dest, result.Marker)
		return
	}
	logger.Info("landed %s for ingest_date=%s", result.Dest, cfg.IngestDate)
}
