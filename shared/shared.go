package shared

import (
	"context"
	"reflect"
	"strconv"
	"strings"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return intValue, nil
}

// IntParam parses a numeric path or query value, reporting a bad request naming the parameter.
func IntParam(name, value string) (int, error) {
	intValue, err := ConvertStringToInt(value)
	if err != nil {
		return 0, failure.BadRequestFromString(name + " must be a number")
	}

	return intValue, nil
}

// ChangedFields collects the non-zero db-tagged fields of a struct. Nil pointers are skipped,
// set pointers are kept even when they point at a zero value.
func ChangedFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	changed := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			changed[fieldName] = field.Elem().Interface()

			continue
		}

		changed[fieldName] = field.Interface()
	}

	return changed
}

// TransformFields converts the fields of a struct into a map of updated fields stamped with modification metadata.
func TransformFields(data any, username string) map[string]any {
	updatedFields := ChangedFields(data)

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

const (
	errInvalidDate  = "date must be in YYYY-MM-DD format"
	errInvalidMonth = "month must be between 1 and 12"
	errInvalidYear  = "year must be between 1 and 9999"
)

// ParseDateParam parses a YYYY-MM-DD value taken from a path or body.
func ParseDateParam(value string) (time.Time, error) {
	date, err := timezone.ParseDate(strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(errInvalidDate)
	}

	return date, nil
}

// MonthRangeParam validates year and month and returns the half-open range [start, end) of that month.
func MonthRangeParam(year, month int) (time.Time, time.Time, error) {
	if year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(errInvalidYear)
	}

	if month < 1 || month > constant.MonthsInYear {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(errInvalidMonth)
	}

	start, end := timezone.MonthRange(year, month)

	return start, end, nil
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), ":")
}

// Identity is the authenticated caller attached to a request context.
type Identity struct {
	UserID   string
	Username string
	Role     string
}

func GetIdentity(ctx context.Context) (Identity, bool) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return Identity{}, false
	}

	username, _ := ctx.Value(constant.ContextKeyUsername).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Identity{UserID: userID, Username: username, Role: role}, true
}

// WithIdentity attaches identity to ctx the same way the auth middleware does.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, identity.UserID)
	ctx = context.WithValue(ctx, constant.ContextKeyUsername, identity.Username)

	return context.WithValue(ctx, constant.ContextKeyUserRole, identity.Role)
}

// Actor returns the user id recorded in created_by/modified_by columns.
func Actor(ctx context.Context) string {
	if identity, ok := GetIdentity(ctx); ok {
		return identity.UserID
	}

	return constant.ContextSystem
}

func (i Identity) IsPrivileged() bool {
	return i.Role == constant.RoleManager || i.Role == constant.RoleAdmin
}

// CanAccessEmployee allows Managers and Admins everything and Employees only their own records.
func (i Identity) CanAccessEmployee(employeeID string) bool {
	return i.IsPrivileged() || i.UserID == employeeID
}
