package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

type cryptoSource struct {
	reader io.Reader
}

// NewCryptoSource returns a RandomSource backed by crypto/rand.
func NewCryptoSource() RandomSource {
	return &cryptoSource{reader: rand.Reader}
}

// Intn returns a uniform integer in [0, n) read from the system CSPRNG.
func (s *cryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, errors.New("random range must be positive")
	}
	v, err := rand.Int(s.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value: %w", err)
	}
	return int(v.Int64()), nil
}

// pick returns a uniformly chosen element of set.
func pick(random RandomSource, set []rune) (rune, error) {
	idx, err := random.Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// shuffle permutes chars in place with a Fisher-Yates shuffle.
func shuffle(random RandomSource, chars []rune) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := random.Intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}
