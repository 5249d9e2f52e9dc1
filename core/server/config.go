package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey is the secret key required to access the admin API.
	// Webhook routes are authenticated by signature instead.
	ApiKey string `mapstructure:"api_key" default:""`
	// WebhookSecret is the shared secret used to verify webhook signatures.
	// Verification is skipped when empty.
	WebhookSecret string `mapstructure:"webhook_secret" default:""`
	// BodyLimitBytes is the maximum accepted request body size.
	BodyLimitBytes int `mapstructure:"body_limit_bytes" default:"2097152"`
}

// DefaultBodyLimit matches the 2mb JSON limit of the webhook receiver.
const DefaultBodyLimit = 2 * 1024 * 1024

// BodyLimit returns the configured body limit, falling back to DefaultBodyLimit.
func (c Config) BodyLimit() int {
	if c.BodyLimitBytes <= 0 {
		return DefaultBodyLimit
	}
	return c.BodyLimitBytes
}

// VerifiesWebhooks reports whether webhook signatures are checked.
func (c Config) VerifiesWebhooks() bool {
	return c.WebhookSecret != ""
}
