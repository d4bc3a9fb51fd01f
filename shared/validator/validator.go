package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"hotel/shared/constant"
	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate *val.Validate

// registerDateValidation accepts YYYY-MM-DD calendar dates.
func registerDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateFormat, value)

	return err == nil
}

// registerPositiveAmountValidation accepts decimal amounts strictly greater than zero.
func registerPositiveAmountValidation(field val.FieldLevel) bool {
	amount, ok := field.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	return amount.IsPositive()
}

// moneyLimit is the first value that no longer fits NUMERIC(12,2).
var moneyLimit = decimal.New(1, 10)

// registerMoneyValidation accepts amounts with at most two decimal places that fit NUMERIC(12,2).
func registerMoneyValidation(field val.FieldLevel) bool {
	amount, ok := field.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}

	if !amount.Equal(amount.Round(2)) {
		return false
	}

	return amount.Abs().LessThan(moneyLimit)
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("dateonly", registerDateValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("positive_amount", registerPositiveAmountValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("money", registerMoneyValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
