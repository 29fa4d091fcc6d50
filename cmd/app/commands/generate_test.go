package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/passgen/internal/passwords/domain"
	"github.com/allisson/passgen/internal/passwords/http/dto"
	"github.com/allisson/passgen/internal/passwords/usecase/mocks"
)

func TestRunGenerate(t *testing.T) {
	ctx := context.Background()
	request := domain.DefaultRequest()

	t.Run("Success_SingleText", func(t *testing.T) {
		useCase := &mocks.MockPasswordUseCase{}
		useCase.On("Generate", mock.Anything, request).
			Return(sampleResult("Xq7#mPz2!kLwR4$b"), nil).
			Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, useCase, newTestLogger(), &out, request, 1, "text")

		require.NoError(t, err)
		assert.Equal(t, "Xq7#mPz2!kLwR4$b\tvery_strong (82/100)\n", out.String())
		useCase.AssertExpectations(t)
	})

	t.Run("Success_BatchJSON", func(t *testing.T) {
		useCase := &mocks.MockPasswordUseCase{}
		useCase.On("GenerateBatch", mock.Anything, request, 2).
			Return([]*domain.GenerationResult{
				sampleResult("Xq7#mPz2!kLwR4$b"),
				sampleResult("Tr9&vNe3@pHsK6%d"),
			}, nil).
			Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, useCase, newTestLogger(), &out, request, 2, "json")
		require.NoError(t, err)

		var response dto.GenerateResponse
		require.NoError(t, json.Unmarshal(out.Bytes(), &response))
		require.Len(t, response.Passwords, 2)
		assert.Equal(t, "Xq7#mPz2!kLwR4$b", response.Passwords[0].Password)
		assert.Equal(t, "Tr9&vNe3@pHsK6%d", response.Passwords[1].Password)
		useCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidFormat", func(t *testing.T) {
		useCase := &mocks.MockPasswordUseCase{}

		var out bytes.Buffer
		err := RunGenerate(ctx, useCase, newTestLogger(), &out, request, 1, "xml")

		require.Error(t, err)
		assert.Empty(t, out.String())
		useCase.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Error_UseCase", func(t *testing.T) {
		short := request
		short.Length = 8

		useCase := &mocks.MockPasswordUseCase{}
		useCase.On("Generate", mock.Anything, short).
			Return(nil, domain.ErrLengthTooShort).
			Once()

		var out bytes.Buffer
		err := RunGenerate(ctx, useCase, newTestLogger(), &out, short, 1, "text")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrLengthTooShort)
		assert.Empty(t, out.String())
		useCase.AssertExpectations(t)
	})
}
