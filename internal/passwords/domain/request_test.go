package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMode_Validate(t *testing.T) {
	assert.NoError(t, ModePolicy.Validate())
	assert.NoError(t, ModePronounceable.Validate())

	err := Mode("diceware").Validate()
	assert.ErrorIs(t, err, ErrInvalidMode)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestDefaultRequest(t *testing.T) {
	req := DefaultRequest()

	assert.Equal(t, DefaultLength, req.Length)
	assert.Equal(t, ModePolicy, req.Mode)
	assert.False(t, req.ExcludeSimilar)
	assert.Equal(t, []CharacterClass{Upper, Lower, Digit, Symbol}, req.SelectedClasses())
}

func TestGenerationRequest_SelectedClasses(t *testing.T) {
	tests := []struct {
		name     string
		request  GenerationRequest
		expected []string
	}{
		{
			name:     "None",
			request:  GenerationRequest{},
			expected: []string{},
		},
		{
			name:     "DigitsAndSymbols",
			request:  GenerationRequest{IncludeDigits: true, IncludeSymbols: true},
			expected: []string{"digit", "symbol"},
		},
		{
			name:     "UpperOnly",
			request:  GenerationRequest{IncludeUpper: true},
			expected: []string{"upper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := []string{}
			for _, c := range tt.request.SelectedClasses() {
				names = append(names, c.Name())
			}
			assert.Equal(t, tt.expected, names)
		})
	}
}
