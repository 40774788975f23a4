// Package constants contains configuration values shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Key-value storage drivers.
const (
	StorageDriverMemory   = "memory"
	StorageDriverSQLite   = "sqlite"
	StorageDriverPostgres = "postgres"
	StorageDriverRedis    = "redis"
)

// Backup archive drivers.
const (
	ArchiveDriverLocal  = "local"
	ArchiveDriverMemory = "memory"
	ArchiveDriverS3     = "s3"
	ArchiveDriverURL    = "url"
)
