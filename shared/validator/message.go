package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":        "{field} is required",
		"required_if":     "{field} is required",
		"gte":             "{field} must be greater than or equal to {param}",
		"gtefield":        "{field} must not be before {param}",
		"lte":             "{field} must be less than or equal to {param}",
		"oneof":           "{field} must be one of {param}",
		"max":             "{field} must be less than or equal to {param}",
		"min":             "{field} must be greater than or equal to {param}",
		"email":           "{field} must be a valid email address",
		"dateonly":        "{field} must be a date in YYYY-MM-DD format",
		"positive_amount": "{field} must be greater than 0",
		"money":           "{field} must have at most 2 decimal places and be less than 10000000000",
		"empty":           "{field} must be empty",
	}
)

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				errStr = strings.ReplaceAll(errStr, "{field}", field)
				errStr = strings.ReplaceAll(errStr, "{param}", param)

				return errStr
			}
		}

		return valErrors.Error()
	}

	return err.Error()
}
