// Package config provides configuration management for the size sync service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, admin API key, webhook secret and body limit (SERVER_*)
//   - Shopify: shop domain, admin token, API version, timeouts and retries (SHOPIFY_*)
//   - SizeChart: chart source, file path or bucket object (SIZECHART_*)
//   - Storage: S3/MinIO credentials and bucket settings (STORAGE_*)
//   - Database: optional audit database (DATABASE_*)
//   - Idempotency: webhook de-duplication backend (IDEMPOTENCY_*)
//   - Log: Logging level and format (LOG_*)
//
// The unprefixed names SHOP_DOMAIN, ADMIN_TOKEN, API_VERSION and PORT are still
// accepted; the prefixed form takes precedence when both are set.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
