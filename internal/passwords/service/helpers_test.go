package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/allisson/passgen/internal/passwords/domain"
)

// scriptedSource replays values (reduced modulo n) and then always returns n-1,
// which makes the trailing shuffle an identity permutation.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) (int, error) {
	defer func() { s.calls++ }()
	if s.calls < len(s.values) {
		return s.values[s.calls] % n, nil
	}
	return n - 1, nil
}

// failingSource always returns err.
type failingSource struct {
	err error
}

func (s *failingSource) Intn(int) (int, error) {
	return 0, s.err
}

var errEntropy = errors.New("entropy source closed")

// assertPolicyOutput checks every invariant a policy password must hold.
func assertPolicyOutput(t *testing.T, req domain.GenerationRequest, password string) {
	t.Helper()

	runes := []rune(password)
	assert.Len(t, runes, req.Length)

	for _, class := range req.SelectedClasses() {
		assert.True(t, strings.ContainsAny(password, class.Chars()),
			"expected at least one %s character in %q", class.Name(), password)
	}

	assert.False(t, hasAdjacentRepeat(runes), "adjacent repeat in %q", password)
	assert.False(t, hasMonotonicRun(runes), "monotonic run in %q", password)

	if req.ExcludeSimilar {
		assert.False(t, strings.ContainsAny(password, domain.Similar.Chars()),
			"similar character in %q", password)
	}

	allowed := ""
	for _, class := range req.SelectedClasses() {
		allowed += class.Chars()
	}
	for _, r := range runes {
		assert.True(t, strings.ContainsRune(allowed, r), "character %q outside selected classes", r)
	}
}
