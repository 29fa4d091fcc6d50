// Package dto provides data transfer objects for the password endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/passgen/internal/passwords/domain"
	customValidation "github.com/allisson/passgen/internal/validation"
)

// MaxScoredPasswordLength bounds the input accepted by the score endpoint.
const MaxScoredPasswordLength = 1024

// GenerateRequest contains the options for password generation. Omitted class
// flags default to true, omitted length to domain.DefaultLength, omitted mode to
// policy and omitted count to 1.
type GenerateRequest struct {
	Length         *int   `json:"length"`
	IncludeUpper   *bool  `json:"include_upper"`
	IncludeLower   *bool  `json:"include_lower"`
	IncludeDigits  *bool  `json:"include_digits"`
	IncludeSymbols *bool  `json:"include_symbols"`
	ExcludeSimilar bool   `json:"exclude_similar"`
	Mode           string `json:"mode"`
	Count          *int   `json:"count"`
}

// Validate checks the shape of the request. Length floors that depend on the mode
// and the configured maximums are enforced by the use case.
func (r *GenerateRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Length, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&r.Mode, customValidation.GenerationMode),
		validation.Field(&r.Count, validation.NilOrNotEmpty, validation.Min(1)),
	)
}

// ToDomain converts the request into a GenerationRequest with defaults applied.
func (r *GenerateRequest) ToDomain() domain.GenerationRequest {
	mode := domain.ModePolicy
	if r.Mode != "" {
		mode = domain.Mode(r.Mode)
	}

	return domain.GenerationRequest{
		Length:         intOr(r.Length, domain.DefaultLength),
		IncludeUpper:   boolOr(r.IncludeUpper, true),
		IncludeLower:   boolOr(r.IncludeLower, true),
		IncludeDigits:  boolOr(r.IncludeDigits, true),
		IncludeSymbols: boolOr(r.IncludeSymbols, true),
		ExcludeSimilar: r.ExcludeSimilar,
		Mode:           mode,
	}
}

// GetCount returns the requested count or 1.
func (r *GenerateRequest) GetCount() int {
	return intOr(r.Count, 1)
}

// ScoreRequest contains the password to score.
type ScoreRequest struct {
	Password string `json:"password"` //nolint:gosec // scored, never stored
}

// Validate checks if the score request is valid.
func (r *ScoreRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Password,
			validation.Required,
			customValidation.MaxRunes(MaxScoredPasswordLength),
		),
	)
}

func intOr(value *int, fallback int) int {
	if value == nil {
		return fallback
	}
	return *value
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
