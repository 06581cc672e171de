// Package database handles the optional run history database.
//
// It wraps GORM and configures either MySQL or SQLite from the application config.
// The manifest pipeline records each run in this database when it is available;
// a failed connection only disables history.
//
// # Schema Inspection
//
// GetTableColumns lets the integrity feature detect drift between the live history
// table and the columns the application writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logg.Warn("Run history disabled", zap.Error(err))
//	}
package database
