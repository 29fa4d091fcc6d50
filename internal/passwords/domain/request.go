package domain

// Mode selects the generation strategy.
type Mode string

const (
	ModePolicy        Mode = "policy"
	ModePronounceable Mode = "pronounceable"
)

// Validate checks if the mode is known.
func (m Mode) Validate() error {
	switch m {
	case ModePolicy, ModePronounceable:
		return nil
	default:
		return ErrInvalidMode
	}
}

// String returns the string representation of the mode.
func (m Mode) String() string {
	return string(m)
}

// GenerationRequest carries the options for a single generation. It is built per
// caller action and consumed once.
type GenerationRequest struct {
	Length         int
	IncludeUpper   bool
	IncludeLower   bool
	IncludeDigits  bool
	IncludeSymbols bool
	ExcludeSimilar bool
	Mode           Mode
}

// DefaultRequest returns a policy request of DefaultLength with every class selected.
func DefaultRequest() GenerationRequest {
	return GenerationRequest{
		Length:         DefaultLength,
		IncludeUpper:   true,
		IncludeLower:   true,
		IncludeDigits:  true,
		IncludeSymbols: true,
		Mode:           ModePolicy,
	}
}

// SelectedClasses returns the selected classes in a stable order: upper, lower,
// digit, symbol.
func (r GenerationRequest) SelectedClasses() []CharacterClass {
	classes := make([]CharacterClass, 0, 4)
	if r.IncludeUpper {
		classes = append(classes, Upper)
	}
	if r.IncludeLower {
		classes = append(classes, Lower)
	}
	if r.IncludeDigits {
		classes = append(classes, Digit)
	}
	if r.IncludeSymbols {
		classes = append(classes, Symbol)
	}
	return classes
}
