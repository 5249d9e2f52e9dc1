package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the header carrying the base64 HMAC-SHA256 of the raw body.
const HeaderName = "X-Shopify-Hmac-Sha256"

// Sign returns the base64 HMAC-SHA256 of body under secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Valid reports whether sig is the signature of body under secret.
func Valid(secret string, body []byte, sig string) bool {
	got, err := base64.StdEncoding.DecodeString(sig)
	if err != nil || len(got) == 0 {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(got, mac.Sum(nil))
}

// New returns a middleware verifying webhook signatures.
// An empty secret disables verification.
func New(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return c.Next()
		}
		if !Valid(secret, c.Body(), c.Get(HeaderName)) {
			return c.Status(fiber.StatusUnauthorized).SendString("invalid signature")
		}
		return c.Next()
	}
}
