// Package webhook receives product creation events and keeps footwear size attributes
// in sync.
//
// For each event:
//
//  1. Products without the exact "footwear" tag are ignored.
//  2. The gender comes from the tags, case-insensitively: uomo or man selects MALE,
//     otherwise donna or woman selects FEMALE. Without either the event is ignored.
//  3. Each variant's size label (first option value, else option1) is reduced to its
//     digits and decimal points and parsed. Zero or unparseable sizes are skipped.
//  4. The size is resolved against the size chart using the product vendor as brand.
//  5. Matched variants are synchronized through package metafields and recorded in the
//     audit trail.
//
// The caller always receives 200 with "ignored" or "OK" once processing ends; failures
// are reported in logs and in the audit trail, not in the response.
//
// # Transport
//
// When server.webhook_secret is set the X-Shopify-Hmac-Sha256 header must carry the
// base64 HMAC-SHA256 of the raw body, or the request is rejected with 401. Deliveries
// repeating an X-Shopify-Webhook-Id already seen answer "OK" without processing.
//
// # HTTP Endpoints
//
//   - POST /webhooks/products/create : Product creation webhook.
//   - POST /product-created : Same handler on the legacy path.
package webhook
