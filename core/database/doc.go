// Package database handles database connections.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections from the
// application's configuration. The database is optional: it only backs the sync audit
// trail, and the service keeps acknowledging webhooks when it is unavailable.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Audit database unavailable", zap.Error(err))
//	}
package database
