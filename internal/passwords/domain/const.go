// Package domain defines the password generation domain model: character classes,
// generation requests, generated passwords and strength reports.
package domain

// Length and retry constraints
const (
	// MinPolicyLength is the shortest password the policy generator will produce.
	MinPolicyLength = 12

	// DefaultLength is the length used when a request does not specify one.
	DefaultLength = 16

	// DefaultMaxLength is the default upper bound accepted at the API and CLI boundary.
	DefaultMaxLength = 128

	// DefaultMaxAttempts is the default number of candidates the policy generator
	// builds before giving up with ErrGenerationExhausted.
	DefaultMaxAttempts = 5000

	// DefaultMaxBatchSize is the default upper bound for batch generation.
	DefaultMaxBatchSize = 50

	// MaxEntropyBits is the entropy at which the strength score saturates at 100.
	MaxEntropyBits = 128.0
)
