// Package timezone pins every clock read and calendar computation to the
// application timezone configured through APP_TIMEZONE.
//
// Usage:
//
//	now := timezone.Now()                         // current time in app timezone
//	day := timezone.Today()                       // midnight of the current business day
//	d, err := timezone.ParseDate("2024-01-01")    // request path dates
//	start, end := timezone.MonthRange(2024, 1)    // half-open month window for SQL
//	from, to := timezone.WindowEndingToday(30)    // rolling report windows
//
// Only IANA names are supported ("UTC", "Asia/Jakarta", "Europe/London").
// The location is resolved once when the package is imported.
package timezone
