package dto

import (
	"github.com/allisson/passgen/internal/passwords/domain"
)

// PasswordResponse is one generated password in API responses.
type PasswordResponse struct {
	Password string `json:"password"` //nolint:gosec // returned to the caller that asked for it
	Score    int    `json:"score"`
	Strength string `json:"strength"`
	Mode     string `json:"mode"`
	Length   int    `json:"length"`
}

// GenerateResponse wraps the generated passwords.
type GenerateResponse struct {
	Passwords []PasswordResponse `json:"passwords"`
}

// MapResultsToResponse converts generation results to an API response.
func MapResultsToResponse(results []*domain.GenerationResult) GenerateResponse {
	passwords := make([]PasswordResponse, 0, len(results))
	for _, result := range results {
		passwords = append(passwords, PasswordResponse{
			Password: result.Password,
			Score:    result.Score,
			Strength: string(result.Strength),
			Mode:     result.Mode.String(),
			Length:   result.Length,
		})
	}
	return GenerateResponse{Passwords: passwords}
}

// ScoreResponse describes the strength of a scored password.
type ScoreResponse struct {
	Score       int      `json:"score"`
	Strength    string   `json:"strength"`
	EntropyBits float64  `json:"entropy_bits"`
	Classes     []string `json:"classes"`
}

// MapReportToResponse converts a strength report to an API response.
func MapReportToResponse(report *domain.StrengthReport) ScoreResponse {
	classes := report.Classes
	if classes == nil {
		classes = []string{}
	}
	return ScoreResponse{
		Score:       report.Score,
		Strength:    string(report.Strength),
		EntropyBits: report.EntropyBits,
		Classes:     classes,
	}
}
