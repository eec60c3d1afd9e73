// Package config reads the run configuration from environment variables,
// once per run. The "today" fallback for the ingest date is resolved exactly
// once by the outermost entry point (which passes its clock reading into
// Load) and threaded down as a value, never re-queried mid-run.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"milagros/domain/partition"
	"milagros/internal/errors"
)

// Config represents the complete pipeline configuration for one run
type Config struct {
	Landing LandingConfig
	Silver  SilverConfig
	// IngestDate is the partition key every stage of this run operates on.
	IngestDate partition.Key
}

// LandingConfig holds bronze landing-stage settings
type LandingConfig struct {
	RawBasePath string // root directory for bronze partitions
	SourcePath  string // spreadsheet copied by the landing stage
}

// SilverConfig holds transformation-stage settings
type SilverConfig struct {
	SilverBasePath string // root directory for silver partitions
	RawBasePath    string // where the landing stage put the raw file
}

// Load reads configuration from environment variables. now supplies the
// current-date fallback for INGEST_DATE.
func Load(now time.Time) (*Config, error) {
	rawBase, err := absPath(getEnvOrDefault("RAW_BASE_PATH", "raw/milagros"))
	if err != nil {
		return nil, err
	}
	silverBase, err := absPath(getEnvOrDefault("SILVER_BASE_PATH", "processed/silver/milagros"))
	if err != nil {
		return nil, err
	}
	sourcePath, err := absPath(getEnvOrDefault("SOURCE_XLSX_PATH", "data/milagros/Nacimientos_HGM.xlsx"))
	if err != nil {
		return nil, err
	}

	key, err := loadIngestDate(now)
	if err != nil {
		return nil, err
	}

	return &Config{
		Landing: LandingConfig{
			RawBasePath: rawBase,
			SourcePath:  sourcePath,
		},
		Silver: SilverConfig{
			SilverBasePath: silverBase,
			RawBasePath:    rawBase,
		},
		IngestDate: key,
	}, nil
}

func loadIngestDate(now time.Time) (partition.Key, error) {
	raw := strings.TrimSpace(os.Getenv("INGEST_DATE"))
	if raw == "" {
		return partition.KeyForDate(now), nil
	}
	key, err := partition.ParseKey(raw)
	if err != nil {
		return "", errors.Wrap(errors.ConfigInvalid(err.Error()), "invalid INGEST_DATE")
	}
	return key, nil
}

func absPath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve path %q", p)
	}
	return abs, nil
}

// Helper for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
