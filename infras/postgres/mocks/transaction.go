package mocks

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RunTransaction invokes the callback with a nil transaction, for use with DoAndReturn.
func RunTransaction(_ context.Context, fn func(*sqlx.Tx) error) error {
	return fn(nil)
}
