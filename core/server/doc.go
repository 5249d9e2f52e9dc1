// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the settings
// the Fiber app is built from: listening port, admin API key, webhook signing secret and
// the request body limit.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go and the middleware.
package server
