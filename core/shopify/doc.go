// Package shopify is a small client for the Shopify Admin REST API.
//
// Only the metafield endpoints needed to persist size equivalents on product variants are
// covered:
//
//   - GET  /variants/{id}/metafields.json
//   - POST /variants/{id}/metafields.json
//   - PUT  /metafields/{id}.json
//
// Every call carries the X-Shopify-Access-Token header, runs under its own deadline
// (Config.RequestTimeoutSeconds) and is retried with exponential backoff on 429 and 5xx
// responses, honoring Retry-After. Non-2xx responses surface as *StatusError.
//
// # Identifiers
//
// ParseVariantID accepts gid://shopify/ProductVariant/<id> references and bare numeric ids,
// returning ErrInvalidIdentifier otherwise. FlexString decodes ids and values the API may
// send as either JSON numbers or strings.
package shopify
