package manifest

import (
	"path"
	"time"
)

// Artifact object names, relative to Config.Prefix.
const (
	WeaponsObject = "weapons.json"
	PlugsObject   = "plugs.json"
	VersionObject = "version.txt"
)

// Config holds configuration for the remote manifest and the extracted artifacts.
type Config struct {
	// ApiKey is the opaque credential sent as X-API-Key.
	ApiKey string `mapstructure:"api_key" default:""`
	// BaseURL is the remote host serving the index and content paths.
	BaseURL string `mapstructure:"base_url" default:"https://www.bungie.net"`
	// Locale selects the content path set of the index.
	Locale string `mapstructure:"locale" default:"en"`
	// Table is the item definition table name.
	Table string `mapstructure:"table" default:"DestinyInventoryItemDefinition"`
	// PlugSetTable is merged into the item table so plug-set hashes resolve. Empty disables it.
	PlugSetTable string `mapstructure:"plug_set_table" default:"DestinyPlugSetDefinition"`
	// Prefix is the object key prefix of the artifacts.
	Prefix string `mapstructure:"prefix" default:"manifest"`
	// OutputShape is minimal, slim or full.
	OutputShape string `mapstructure:"output_shape" default:"slim"`
	// TimeoutSeconds bounds each remote request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"120"`
}

// ObjectKey returns the storage key of an artifact.
func (c Config) ObjectKey(name string) string {
	if c.Prefix == "" {
		return name
	}
	return path.Join(c.Prefix, name)
}

// ArtifactKeys lists every object a successful run leaves behind.
func (c Config) ArtifactKeys() []string {
	return []string{
		c.ObjectKey(WeaponsObject),
		c.ObjectKey(PlugsObject),
		c.ObjectKey(VersionObject),
	}
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 120 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
