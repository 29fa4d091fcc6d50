// Package http provides HTTP handlers for password generation and scoring.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/allisson/passgen/internal/httputil"
	"github.com/allisson/passgen/internal/passwords/domain"
	"github.com/allisson/passgen/internal/passwords/http/dto"
	passwordUseCase "github.com/allisson/passgen/internal/passwords/usecase"
	customValidation "github.com/allisson/passgen/internal/validation"
)

// PasswordHandler handles HTTP requests for password operations.
type PasswordHandler struct {
	passwordUseCase passwordUseCase.PasswordUseCase
	logger          *slog.Logger
}

// NewPasswordHandler creates a new password handler.
func NewPasswordHandler(useCase passwordUseCase.PasswordUseCase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		passwordUseCase: useCase,
		logger:          logger,
	}
}

// GenerateHandler generates one or more passwords.
// POST /v1/passwords/generate
// Returns 201 Created with the generated passwords.
func (h *PasswordHandler) GenerateHandler(c *gin.Context) {
	var req dto.GenerateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	request := req.ToDomain()
	count := req.GetCount()

	var results []*domain.GenerationResult
	if count == 1 {
		result, err := h.passwordUseCase.Generate(c.Request.Context(), request)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		results = []*domain.GenerationResult{result}
	} else {
		batch, err := h.passwordUseCase.GenerateBatch(c.Request.Context(), request, count)
		if err != nil {
			httputil.HandleErrorGin(c, err, h.logger)
			return
		}
		results = batch
	}

	c.JSON(http.StatusCreated, dto.MapResultsToResponse(results))
}

// ScoreHandler reports the strength of a caller-supplied password.
// POST /v1/passwords/score
func (h *PasswordHandler) ScoreHandler(c *gin.Context) {
	var req dto.ScoreRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	report := h.passwordUseCase.Score(c.Request.Context(), req.Password)
	c.JSON(http.StatusOK, dto.MapReportToResponse(report))
}
