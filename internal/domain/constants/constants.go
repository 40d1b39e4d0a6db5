// Package constants holds string constants shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Event types published on the event topic.
const (
	EventQuestionnaireCompleted = "questionnaire.completed"
	EventPasswordResetRequested = "password_reset.requested"
)

// Auth providers
const (
	AuthProviderEmail = "email"
)

// Device platforms
const (
	PlatformIOS     = "ios"
	PlatformAndroid = "android"
	PlatformWeb     = "web"
)
