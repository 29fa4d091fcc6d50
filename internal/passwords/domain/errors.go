package domain

import (
	"github.com/allisson/passgen/internal/errors"
)

var (
	// ErrInvalidRequest indicates the generation request cannot be satisfied as given.
	ErrInvalidRequest = errors.Wrap(errors.ErrInvalidInput, "invalid generation request")

	// ErrLengthTooShort indicates a policy request below MinPolicyLength.
	ErrLengthTooShort = errors.Wrap(ErrInvalidRequest, "password length must be at least 12 characters")

	// ErrLengthRequired indicates a request with a length below 1.
	ErrLengthRequired = errors.Wrap(ErrInvalidRequest, "password length must be at least 1")

	// ErrLengthTooLong indicates a request above the configured maximum length.
	ErrLengthTooLong = errors.Wrap(ErrInvalidRequest, "password length exceeds the maximum")

	// ErrNegativeLength indicates a request with a negative length.
	ErrNegativeLength = errors.Wrap(ErrInvalidRequest, "password length must not be negative")

	// ErrEmptyPool indicates no characters are left after class selection and similar exclusion.
	ErrEmptyPool = errors.Wrap(ErrInvalidRequest, "select at least one character type")

	// ErrInvalidMode indicates an unknown generation mode.
	ErrInvalidMode = errors.Wrap(ErrInvalidRequest, "invalid generation mode")

	// ErrInvalidBatchSize indicates a batch count outside the accepted range.
	ErrInvalidBatchSize = errors.Wrap(ErrInvalidRequest, "invalid batch size")

	// ErrGenerationExhausted indicates the policy generator ran out of attempts
	// before producing a candidate free of weak patterns.
	ErrGenerationExhausted = errors.Wrap(errors.ErrUnavailable, "password generation exhausted its retry budget")
)
