// Command silver runs the transformation stage: it loads the raw partition,
// normalizes the schema, hardens types, validates the data contract and
// persists the silver parquet output plus its completion marker.
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"milagros/adapters/excel"
	"milagros/adapters/parquet"
	"milagros/internal"
	"milagros/internal/config"
	"milagros/internal/silver"

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
	pipeline := silver.NewPipeline(
		excel.NewSheetReader(excel.SheetName),
		parquet.NewWriter(),
		cfg.Silver.RawBasePath,
		cfg.Silver.SilverBasePath,
		cfg.IngestDate,
		logger,
	)

	result, err := pipeline.Run(context.Background())
	if err != nil {
		logger.Error("silver transformation failed: %v", err)
		os.Exit(1)
	}

	logger.Info("columns: %s", strings.Join(result.Columns, ", "))
}
