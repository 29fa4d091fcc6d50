package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/passgen/internal/passwords/domain"
)

func TestStrengthEstimator_Score(t *testing.T) {
	estimator := NewStrengthEstimator()

	tests := []struct {
		name     string
		password string
		expected int
	}{
		{name: "Empty", password: "", expected: 0},
		{name: "NoKnownClass", password: "ñé ~", expected: 0},
		{name: "LowerOnly12", password: "qwmzpkrtvbnx", expected: 44},
		{name: "DigitsOnly10", password: "0123456789", expected: 25},
		{name: "AllClasses4", password: "Aa1!", expected: 20},
		{name: "AllClasses16", password: "Xq7#mPz2!kLwR4$b", expected: 80},
		{name: "AllClasses20Capped", password: "Xq7#mPz2!kLwR4$bT8&c", expected: 100},
		{name: "LongLowerCapped", password: strings.Repeat("ab", 40), expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, estimator.Score(tt.password))
		})
	}
}

func TestStrengthEstimator_Deterministic(t *testing.T) {
	estimator := NewStrengthEstimator()

	first := estimator.Score("Xq7#mPz2!kLw")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, estimator.Score("Xq7#mPz2!kLw"))
	}
}

func TestStrengthEstimator_MonotonicInLength(t *testing.T) {
	estimator := NewStrengthEstimator()

	for _, unit := range []string{"a", "aB", "aB3", "aB3!", "7"} {
		previous := 0
		for n := 0; n <= 60; n++ {
			score := estimator.Score(strings.Repeat(unit, n))
			assert.GreaterOrEqual(t, score, previous, "unit %q length %d", unit, n)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
			previous = score
		}
	}
}

func TestStrengthEstimator_BoundedForGeneratedPasswords(t *testing.T) {
	estimator := NewStrengthEstimator()
	gen := NewPolicyGenerator(NewCryptoSource(), domain.DefaultMaxAttempts)

	for i := 0; i < 100; i++ {
		password, err := gen.Generate(domain.DefaultRequest())
		assert.NoError(t, err)

		score := estimator.Score(password.String())
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 100)
	}
}

func TestStrengthEstimator_Report(t *testing.T) {
	estimator := NewStrengthEstimator()

	t.Run("Success_AllClasses", func(t *testing.T) {
		report := estimator.Report("Xq7#mPz2!kLwR4$b")

		assert.Equal(t, 80, report.Score)
		assert.Equal(t, domain.StrengthVeryStrong, report.Strength)
		assert.InDelta(t, 103.087, report.EntropyBits, 0.01)
		assert.Equal(t, []string{"upper", "lower", "digit", "symbol"}, report.Classes)
	})

	t.Run("Success_Empty", func(t *testing.T) {
		report := estimator.Report("")

		assert.Equal(t, 0, report.Score)
		assert.Equal(t, domain.StrengthWeak, report.Strength)
		assert.Zero(t, report.EntropyBits)
		assert.Empty(t, report.Classes)
	})

	t.Run("Success_SymbolOutsideFixedSetIgnored", func(t *testing.T) {
		report := estimator.Report("abc~")

		assert.Equal(t, []string{"lower"}, report.Classes)
	})
}
