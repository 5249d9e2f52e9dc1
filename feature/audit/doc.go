// Package audit keeps a trail of variant synchronizations in the optional database.
//
// Every variant handed to the synchronizer produces one SyncRecord with the resolved
// brand, gender, size and scale plus the per-action counts and the first error, if any.
// The table is created with AutoMigrate on startup when database.enabled is true.
//
// # HTTP Endpoints
//
//   - GET /audit/syncs?limit= : Latest records, newest first. 503 without a database.
package audit
