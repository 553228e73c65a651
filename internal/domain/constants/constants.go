// Package constants holds string identifiers shared across layers.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the event bus.
const (
	EventSectionCreated  = "section.created"
	EventProgressUpdated = "progress.updated"
	EventCommentCreated  = "comment.created"
	EventStartupExported = "startup.exported"
)
