package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	OCR    OCRConfig
	Store  StoreConfig
	Engine EngineConfig
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract        string
	TesseractLang    string
	TessdataDir      string
	PSM              int
	OEM              int
	HeicConverter    string
	ArtifactCacheDir string
	Timeout          time.Duration
}

// StoreConfig holds results-database configuration
type StoreConfig struct {
	Path string
}

// EngineConfig holds extraction-engine configuration
type EngineConfig struct {
	// UTCOffsetHours is applied to date formats that carry no zone of their own.
	UTCOffsetHours int
}

// LoadConfig loads configuration from the environment, reading a local .env
// file first when one exists.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		OCR: OCRConfig{
			Tesseract:        getEnv("TESSERACT_BIN", "tesseract"),
			TesseractLang:    getEnv("TESSERACT_LANG", "eng"),
			TessdataDir:      getEnv("TESSDATA_PREFIX", ""),
			PSM:              getEnvAsInt("TESSERACT_PSM", 0),
			OEM:              getEnvAsInt("TESSERACT_OEM", 0),
			HeicConverter:    getEnv("HEIC_CONVERTER", "magick"),
			ArtifactCacheDir: getEnv("ARTIFACT_CACHE_DIR", "./tmp"),
			Timeout:          getEnvAsDuration("OCR_TIMEOUT", 2*time.Minute),
		},
		Store: StoreConfig{
			Path: getEnv("VISCERA_DB", "viscera.db"),
		},
		Engine: EngineConfig{
			UTCOffsetHours: getEnvAsInt("DATE_UTC_OFFSET_HOURS", 8),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.OCR.Tesseract == "" {
		return NewAppError("CONFIG_ERROR", "TESSERACT_BIN must not be empty", ErrInvalidInput)
	}
	if c.Engine.UTCOffsetHours < -12 || c.Engine.UTCOffsetHours > 14 {
		return NewAppError("CONFIG_ERROR", "DATE_UTC_OFFSET_HOURS out of range", ErrInvalidInput)
	}
	return nil
}
