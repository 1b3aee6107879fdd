package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/ufund-io/ufund-v2/internal/api/shared/errors"
	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/logger"
)

// respondBadRequest responds with a bad request error
func respondBadRequest(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusBadRequest, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound responds with a not found error
func respondNotFound(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusNotFound, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError responds with a validation error
func respondValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusUnprocessableEntity, apierrors.NewValidationError(message))
}

// respondConflict responds with a conflict error
func respondConflict(c *gin.Context, message string, details ...string) {
	c.JSON(http.StatusConflict, apierrors.NewConflictError(message, details...))
}

// respondInternalError responds with an internal server error
func respondInternalError(c *gin.Context, err error, message string, details ...string) {
	logger.ErrorCtx(c.Request.Context(), err,
		zap.String("message", message),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, apierrors.NewInternalError(message, details...))
}

// respondDomainError maps domain sentinel errors onto HTTP responses
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrNeedNotFound),
		errors.Is(err, domain.ErrLineNotFound),
		errors.Is(err, domain.ErrBasketNotFound),
		errors.Is(err, domain.ErrProfileNotFound):
		respondNotFound(c, err.Error())
	case errors.Is(err, domain.ErrNeedExists),
		errors.Is(err, domain.ErrProfileExists),
		errors.Is(err, domain.ErrBasketExists):
		respondConflict(c, err.Error())
	default:
		respondInternalError(c, err, "Unexpected error")
	}
}
