// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - auth: Implements API key validation to protect the admin endpoints.
//   - signature: Verifies the HMAC-SHA256 signature the store platform attaches to
//     webhook deliveries.
//
// These components are registered globally or per-route group in cmd/start.go.
package middleware
