package shopify

import (
	"fmt"
	"strings"
	"time"
)

// Config holds configuration for the Shopify Admin API.
type Config struct {
	// ShopDomain is the myshopify.com domain of the store.
	ShopDomain string `mapstructure:"shop_domain" default:"london-store-napoli.myshopify.com"`
	// AdminToken is the Admin API access token.
	AdminToken string `mapstructure:"admin_token" default:""`
	// APIVersion is the versioned API path segment.
	APIVersion string `mapstructure:"api_version" default:"2025-10"`
	// BaseURL overrides https://{ShopDomain} (used against local doubles).
	BaseURL string `mapstructure:"base_url" default:""`
	// RequestTimeoutSeconds bounds every single API call.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" default:"15"`
	// MaxRetries is the number of retries for throttled or 5xx responses.
	MaxRetries int `mapstructure:"max_retries" default:"2"`
}

// Validate checks the settings required to talk to the store.
func (c Config) Validate() error {
	if strings.TrimSpace(c.AdminToken) == "" {
		return fmt.Errorf("shopify admin token is required (set SHOPIFY_ADMIN_TOKEN or ADMIN_TOKEN)")
	}
	if strings.TrimSpace(c.ShopDomain) == "" && strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("shopify shop domain is required")
	}
	return nil
}

// APIRoot returns the versioned Admin REST root, without trailing slash.
func (c Config) APIRoot() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = "https://" + strings.TrimSpace(c.ShopDomain)
	}
	version := strings.TrimSpace(c.APIVersion)
	if version == "" {
		version = "2025-10"
	}
	return base + "/admin/api/" + version
}

// Timeout returns the per-call timeout.
func (c Config) Timeout() time.Duration {
	if c.RequestTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}
