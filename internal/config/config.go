package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration, loaded from environment
// variables with sane local-development defaults.
type Config struct {
	AppPort string
	Env     string

	MongoURI            string
	MongoDatabase       string
	MongoMaxPoolSize    uint64
	MongoConnectTimeout time.Duration
	MongoSocketTimeout  time.Duration

	// OperationTimeout bounds every persistence operation so a request
	// fails with a server error instead of hanging.
	OperationTimeout time.Duration

	// BarcodeFormats is the static list of recognized barcode formats
	// carried as configuration for the scanning client. The service does
	// no scanning itself.
	BarcodeFormats []string
}

// Load reads configuration via Viper. Environment variables override the
// defaults.
func Load() *Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "warung")
	viper.SetDefault("MONGO_MAX_POOL_SIZE", 10)
	viper.SetDefault("MONGO_CONNECT_TIMEOUT", "10s")
	viper.SetDefault("MONGO_SOCKET_TIMEOUT", "30s")
	viper.SetDefault("OPERATION_TIMEOUT", "5s")
	viper.SetDefault("BARCODE_FORMATS", []string{"EAN-13", "EAN-8", "UPC-A", "UPC-E", "CODE-128", "QR"})
	viper.AutomaticEnv()

	return &Config{
		AppPort:             viper.GetString("APP_PORT"),
		Env:                 viper.GetString("APP_ENV"),
		MongoURI:            viper.GetString("MONGO_URI"),
		MongoDatabase:       viper.GetString("MONGO_DB"),
		MongoMaxPoolSize:    viper.GetUint64("MONGO_MAX_POOL_SIZE"),
		MongoConnectTimeout: viper.GetDuration("MONGO_CONNECT_TIMEOUT"),
		MongoSocketTimeout:  viper.GetDuration("MONGO_SOCKET_TIMEOUT"),
		OperationTimeout:    viper.GetDuration("OPERATION_TIMEOUT"),
		BarcodeFormats:      viper.GetStringSlice("BARCODE_FORMATS"),
	}
}

// IsDevelopment reports whether the service runs in development mode.
// Development responses include internal error detail; production
// responses redact it.
func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}
