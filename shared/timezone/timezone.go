package timezone

import (
	"time"

	"hotel/config"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	name := cfg.App.Timezone
	if name == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")

		name = "UTC"
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", name).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'Europe/London' or 'Asia/Jakarta'")

		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().Str("timezone", loc.String()).Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// Today returns midnight of the current calendar day in the application timezone.
func Today() time.Time {
	return StartOfDay(Now())
}

// StartOfDay truncates t to midnight in the application timezone.
func StartOfDay(t time.Time) time.Time {
	local := t.In(GetLocation())

	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, GetLocation())
}

// ToAppTime converts a time to the application timezone
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the current application timezone location
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses a time string in the application timezone
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return Parse(constant.DateFormat, value)
}

// Format formats a time in the application timezone
func Format(t time.Time, layout string) string {
	if t.IsZero() {
		return constant.Empty
	}

	return ToAppTime(t).Format(layout)
}

// FormatDate renders a calendar date as YYYY-MM-DD without shifting it across zones.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return t.Format(constant.DateFormat)
}

// MonthRange returns the first day of the month and the first day of the following month.
func MonthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, GetLocation())

	return start, start.AddDate(0, 1, 0)
}

// WindowEndingToday returns the first and last day of an N-day window that ends today.
func WindowEndingToday(days int) (time.Time, time.Time) {
	end := Today()

	return end.AddDate(0, 0, -(days - 1)), end
}
