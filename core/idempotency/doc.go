// Package idempotency de-duplicates webhook deliveries.
//
// The store platform retries deliveries it considers unacknowledged and tags each one with
// an X-Shopify-Webhook-Id header. Recording that id before processing lets a redelivery be
// acknowledged without issuing the metafield reads and writes a second time.
//
// Two backends are provided: MemoryStore for a single instance and RedisStore (SETNX with a
// TTL) for replicas sharing state.
package idempotency
