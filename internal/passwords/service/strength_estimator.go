package service

import (
	"math"
	"unicode/utf8"

	"github.com/allisson/passgen/internal/passwords/domain"
)

// Character-space contribution of each observed class. The symbol figure is the
// historical constant and is kept as is.
const (
	upperSpace  = 26
	lowerSpace  = 26
	digitSpace  = 10
	symbolSpace = 25
)

type strengthEstimator struct{}

// NewStrengthEstimator returns the alphabet-based estimator.
//
// The score is length * log2(space) scaled so that domain.MaxEntropyBits maps to
// 100, where space sums a fixed size per class found anywhere in the string.
// It measures the apparent alphabet only: passwords produced with similar
// characters excluded, or by the pronounceable generator, draw from smaller
// alphabets than the constants assume and are overestimated.
func NewStrengthEstimator() StrengthEstimator {
	return &strengthEstimator{}
}

// Score returns the strength score in [0, 100].
func (e *strengthEstimator) Score(password string) int {
	return e.Report(password).Score
}

// Report returns the score together with the observed classes and entropy bits.
func (e *strengthEstimator) Report(password string) *domain.StrengthReport {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case domain.Upper.Contains(r):
			hasUpper = true
		case domain.Lower.Contains(r):
			hasLower = true
		case domain.Digit.Contains(r):
			hasDigit = true
		case domain.Symbol.Contains(r):
			hasSymbol = true
		}
	}

	space := 0
	classes := make([]string, 0, 4)
	if hasUpper {
		space += upperSpace
		classes = append(classes, domain.Upper.Name())
	}
	if hasLower {
		space += lowerSpace
		classes = append(classes, domain.Lower.Name())
	}
	if hasDigit {
		space += digitSpace
		classes = append(classes, domain.Digit.Name())
	}
	if hasSymbol {
		space += symbolSpace
		classes = append(classes, domain.Symbol.Name())
	}

	report := &domain.StrengthReport{Classes: classes}
	if space == 0 {
		report.Strength = domain.StrengthForScore(0)
		return report
	}

	report.EntropyBits = float64(utf8.RuneCountInString(password)) * math.Log2(float64(space))
	report.Score = int(math.Floor(math.Min(100, report.EntropyBits/domain.MaxEntropyBits*100)))
	report.Strength = domain.StrengthForScore(report.Score)
	return report
}
