package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldError reports a single failed validation, mirroring the per-field
// messages clients receive on a 400.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// bindingErrorBody shapes a ShouldBindJSON failure: validator errors become a
// per-field list, anything else (malformed JSON) a generic error.
func bindingErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, FieldError{
				Path:    fe.Field(),
				Message: validationMessage(fe),
			})
		}
		return gin.H{"errors": fieldErrors}
	}
	return gin.H{"error": "Invalid request body"}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "min":
		return "is too short"
	case "max":
		return "is too long"
	case "numeric":
		return "must contain only digits"
	case "datetime":
		return "must be a valid date"
	default:
		return "is invalid"
	}
}
