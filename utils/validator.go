package utils

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

func GetValidator() *validator.Validate {
	once.Do(initValidator)
	return validate
}

func initValidator() {
	validate = validator.New()
}

// ParseErrors flattens validator output into one message per field.
func ParseErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	ok := errors.As(err, &validationErrors)
	if !ok {
		return []string{err.Error()}
	}

	errs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errs = append(errs, prettyError(e))
	}

	return errs
}

func prettyError(e validator.FieldError) string {
	field := e.Namespace()

	switch e.Tag() {
	case "required":
		return field + " field is required"
	case "required_without":
		return fmt.Sprintf("%s field is required when %s is empty", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be less than or equal to %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "hostname_port":
		return field + " must be in host:port form"
	default:
		return strings.TrimSpace(e.Error())
	}
}
