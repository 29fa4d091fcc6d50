package domain

// Strength is a coarse label derived from a strength score.
type Strength string

const (
	StrengthWeak       Strength = "weak"
	StrengthFair       Strength = "fair"
	StrengthStrong     Strength = "strong"
	StrengthVeryStrong Strength = "very_strong"
)

// StrengthForScore maps a 0-100 score to its label.
func StrengthForScore(score int) Strength {
	switch {
	case score < 40:
		return StrengthWeak
	case score < 60:
		return StrengthFair
	case score < 80:
		return StrengthStrong
	default:
		return StrengthVeryStrong
	}
}

// StrengthReport describes how a password was scored.
type StrengthReport struct {
	Score       int
	Strength    Strength
	EntropyBits float64
	// Classes lists the observed class names in upper, lower, digit, symbol order.
	Classes []string
}
