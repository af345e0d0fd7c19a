package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/juanedi/fifatum/pkg/validator"
)

// ErrorResponse represents a standard error response format
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse represents a validation error with field-specific details
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// ErrorJSON sends a JSON error response with the specified HTTP status code
func ErrorJSON(ctx *gin.Context, statusCode int, message string) {
	ctx.JSON(statusCode, ErrorResponse{Error: message})
}

// ValidationErrorJSON sends a 400 response carrying per-field binding errors
func ValidationErrorJSON(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Error:  "Invalid input",
		Fields: validator.ParseError(err),
	})
}

// UnauthorizedJSON sends an unauthorized error response
func UnauthorizedJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized access"})
}

// InternalErrorJSON sends an internal server error response. The underlying
// error is logged by the caller, never exposed to clients.
func InternalErrorJSON(ctx *gin.Context) {
	ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// ConflictJSON sends a conflict error response
func ConflictJSON(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusConflict, ErrorResponse{Error: message})
}
