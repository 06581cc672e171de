package storage

import "time"

// Config holds configuration for the S3 compatible bucket holding the artifacts.
type Config struct {
	// Endpoint is host:port of the storage service; an http(s):// scheme is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives weapons.json, plugs.json and version.txt under the manifest prefix.
	Bucket string `mapstructure:"bucket" default:"assets"`
	// Region is used when the integrity fix creates the bucket.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the dial and response header timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
