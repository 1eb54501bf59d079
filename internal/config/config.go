package config

import (
	"os"

	"cropadvisor/internal/errors"
)

// Source names for the reference dataset backend.
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig holds the artifact paths the engine loads at startup
type DataConfig struct {
	Source         string // "csv" or "postgres"
	ModelPath      string
	ReferencePath  string
	ReferenceTable string
	VillageMapPath string
	MarketPath     string
	HomeState      string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   loadServerConfig(),
		Data:     loadDataConfig(),
		Database: DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "release"),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		Source:         getEnv("DATA_SOURCE", SourceCSV),
		ModelPath:      getEnv("MODEL_PATH", "models/crop_classifier.json"),
		ReferencePath:  getEnv("REFERENCE_DATA_PATH", "data/processed/tn_reference.csv"),
		ReferenceTable: getEnv("REFERENCE_TABLE", "crop_reference"),
		VillageMapPath: getEnv("VILLAGE_MAP_PATH", "data/village_to_district.csv"),
		MarketPath:     getEnv("MARKET_DATA_PATH", "data/market_reference.csv"),
		HomeState:      getEnv("HOME_STATE", "tamil nadu"),
	}
}

func (c *Config) validate() error {
	switch c.Data.Source {
	case SourceCSV:
		if c.Data.ReferencePath == "" {
			return errors.ConfigInvalid("REFERENCE_DATA_PATH is required for csv data source")
		}
	case SourcePostgres:
		if c.Database.URL == "" {
			return errors.ConfigInvalid("DATABASE_URL is required for postgres data source")
		}
	default:
		return errors.ConfigInvalid("DATA_SOURCE must be csv or postgres")
	}
	if c.Data.ModelPath == "" {
		return errors.ConfigInvalid("MODEL_PATH is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
