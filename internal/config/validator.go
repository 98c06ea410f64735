package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// step=N requires an integer field to be a multiple of N.
	_ = v.RegisterValidation("step", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseInt(fl.Param(), 10, 64)
		if err != nil || n <= 0 {
			return false
		}
		return fl.Field().Int()%n == 0
	})
	return v
}

// Validate checks cfg and returns every violation in a single error.
func Validate(cfg *Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("configuration validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s, got: %v", field, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s, got: %v", field, fe.Param(), fe.Value())
	case "step":
		return fmt.Sprintf("%s must be a multiple of %s, got: %v", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got: %v", field, fe.Param(), fe.Value())
	case "hostname_port":
		return fmt.Sprintf("%s must be host:port, got: %v", field, fe.Value())
	default:
		return fmt.Sprintf("%s failed %s validation, got: %v", field, fe.Tag(), fe.Value())
	}
}
