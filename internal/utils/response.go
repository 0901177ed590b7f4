package utils

import "github.com/gin-gonic/gin"

// ErrorResponse is the uniform error body: a human-readable message only.
func ErrorResponse(message string) gin.H {
	return gin.H{"message": message}
}

// ValidationErrorResponse carries the per-field messages alongside the
// summary so the form can highlight each offending input.
func ValidationErrorResponse(message string, errs interface{}) gin.H {
	return gin.H{"message": message, "errors": errs}
}
