package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"inspoboard/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// APIError is a failure that is reported to the client as is.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
}

const unexpectedErrorMessage = "An unexpected error occurred"

var errInvalidBody = &APIError{Status: http.StatusBadRequest, Message: "Invalid request body"}

func errInvalidIdentifier(kind, raw string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("The %s with ID %s is invalid.", kind, raw),
	}
}

func errNotFound(kind string, id uint) *APIError {
	return &APIError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("The %s with ID %d does not exist.", kind, id),
	}
}

func errMissingFields(names []string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Missing required fields: " + strings.Join(names, ", "),
	}
}

func errMessageTooLong(limit int) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Message too long (max %d characters)", limit),
	}
}

func errInvalidChoice(param string, choices []string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Invalid %s. Must be one of: %s", param, strings.Join(choices, ", ")),
	}
}

func errInvalidQueryParam(param string) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Message: "Invalid " + param,
	}
}

// respondError writes err as JSON. Anything that is not an *APIError is logged
// and hidden behind a generic 500.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		c.AbortWithStatusJSON(apiErr.Status, ErrorResponse{Message: apiErr.Message})
	case errors.Is(err, repository.ErrBoardNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "Board not found"})
	case errors.Is(err, repository.ErrCardNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{Message: "Card not found"})
	default:
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: unexpectedErrorMessage})
	}
}
