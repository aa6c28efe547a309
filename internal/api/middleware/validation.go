package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"verbaflow/internal/api/errors"
)

// Validator interface for domain validation
type Validator interface {
	Validate() error
}

// ValidateRequest validates both struct tags and domain rules
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		fields := fieldErrors(err, "request", "invalid JSON format")
		return errors.NewValidationError("Validation failed", fields)
	}
	return validateDomain(req)
}

// ValidateQuery validates query parameters
func ValidateQuery(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindQuery(req); err != nil {
		fields := fieldErrors(err, "query", "invalid query parameters")
		return errors.NewValidationError("Invalid query parameters", fields)
	}
	return validateDomain(req)
}

func validateDomain(req interface{}) error {
	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func fieldErrors(err error, fallbackField, fallbackMessage string) map[string]string {
	fields := make(map[string]string)

	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		fields[fallbackField] = fallbackMessage
		return fields
	}

	for _, fieldError := range validationErrs {
		field := strings.ToLower(fieldError.Field())

		switch fieldError.Tag() {
		case "required":
			fields[field] = "is required"
		case "min":
			fields[field] = "is too short"
		case "max":
			fields[field] = "is too long"
		case "oneof":
			fields[field] = "must be one of: " + fieldError.Param()
		default:
			fields[field] = "is invalid"
		}
	}
	return fields
}
