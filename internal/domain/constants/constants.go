package constants

// Runtime environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Authentication providers
const (
	AuthProviderEmail = "email"
)

// Report defaults
const (
	DefaultTimezone          = "America/Guatemala"
	DefaultCurrencySymbol    = "Q"
	DefaultSignaturesPerPage = 3
	DefaultSignatureBucket   = "firmas"
	DefaultMaxSignatureBytes = 2 << 20
)

// Physician search limits
const (
	PhysicianSearchMinLength = 2
	PhysicianSearchLimit     = 20
)

// ReferralHistoryLimit caps the paid history list of a visitadora.
const ReferralHistoryLimit = 20
