// Package constants holds configuration values shared across layers.
package constants

// Pub/Sub providers accepted in pubsub.provider.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderKafka  = "kafka"
)

// Deployment environments accepted in env.env.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// EventTypeAttribute is the message attribute/header carrying the event type.
const EventTypeAttribute = "event_type"
