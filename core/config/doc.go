// Package config provides configuration management for manifest-sync.
//
// Values come from environment variables, optionally seeded by a .env file,
// and fall back to the `default` struct tags declared on each section.
//
// # Configuration Structure
//
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket settings
//   - Log: Logging level and format
//   - Database: optional run history database (mysql or sqlite)
//   - Manifest: remote manifest credential, locale, tables and artifact layout
//
// Nested keys map to upper-cased, underscore separated variables, so
// manifest.api_key is read from MANIFEST_API_KEY.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Manifest.Locale)
package config
