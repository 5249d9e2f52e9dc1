package config

import (
	"fmt"
	"reflect"
	"strings"

	"size-sync/core/database"
	"size-sync/core/idempotency"
	"size-sync/core/logger"
	"size-sync/core/server"
	"size-sync/core/shopify"
	"size-sync/core/storage"
	"size-sync/feature/sizechart"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Shopify holds the Admin API credentials and client settings.
	Shopify shopify.Config `mapstructure:"shopify"`
	// SizeChart selects where the size chart is read from.
	SizeChart sizechart.Config `mapstructure:"sizechart"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the audit database connection.
	Database database.Config `mapstructure:"database"`
	// Idempotency holds configuration for webhook de-duplication.
	Idempotency idempotency.Config `mapstructure:"idempotency"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// legacyEnv maps keys to the unprefixed variable names accepted for compatibility
// with existing deployments. The prefixed name always wins.
var legacyEnv = map[string]string{
	"shopify.shop_domain": "SHOP_DOMAIN",
	"shopify.admin_token": "ADMIN_TOKEN",
	"shopify.api_version": "API_VERSION",
	"server.port":         "PORT",
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, envName(key), legacy); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	return c.Shopify.Validate()
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
