package repository

//go:generate go run go.uber.org/mock/mockgen -source=./analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/sale/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
	"hotel/shared/timezone"
)

const (
	employeeTotalsQuery = `SELECT users.id AS employee_id, users.full_name AS employee_name,
	SUM(sales.amount) AS total_sales, COUNT(sales.id) AS transaction_count
FROM sales
JOIN users ON users.id = sales.employee_id
WHERE sales.sale_date BETWEEN $1 AND $2
GROUP BY users.id, users.full_name
ORDER BY total_sales DESC, users.full_name`

	dailyTotalsQuery = `SELECT sale_date, SUM(amount) AS total_sales, COUNT(id) AS transaction_count
FROM sales
WHERE sale_date BETWEEN $1 AND $2
GROUP BY sale_date
ORDER BY sale_date`

	categoryTotalsQuery = `SELECT category, SUM(amount) AS total
FROM sales
WHERE sale_date = $1
GROUP BY category
ORDER BY category`

	paymentMethodTotalsQuery = `SELECT payment_method, COUNT(id) AS count, SUM(amount) AS total
FROM sales
WHERE sale_date = $1
GROUP BY payment_method
ORDER BY payment_method`
)

// Analytics runs the grouped sales queries behind reports and the dashboard. Ranges are inclusive.
type Analytics interface {
	EmployeeTotals(ctx context.Context, from, to time.Time) ([]model.EmployeeTotal, error)
	DailyTotals(ctx context.Context, from, to time.Time) ([]model.DailyTotal, error)
	CategoryTotals(ctx context.Context, date time.Time) ([]model.CategoryTotal, error)
	PaymentMethodTotals(ctx context.Context, date time.Time) ([]model.PaymentMethodTotal, error)
}

type analyticsImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func NewAnalytics(db *postgres.Connection, otel otel.Otel) Analytics {
	return &analyticsImpl{
		db:   db,
		otel: otel,
	}
}

func (a *analyticsImpl) EmployeeTotals(ctx context.Context, from, to time.Time) ([]model.EmployeeTotal, error) {
	var rows []model.EmployeeTotal

	err := a.selectRows(ctx, "EmployeeTotals", &rows, employeeTotalsQuery, timezone.FormatDate(from), timezone.FormatDate(to))

	return rows, err
}

func (a *analyticsImpl) DailyTotals(ctx context.Context, from, to time.Time) ([]model.DailyTotal, error) {
	var rows []model.DailyTotal

	err := a.selectRows(ctx, "DailyTotals", &rows, dailyTotalsQuery, timezone.FormatDate(from), timezone.FormatDate(to))

	return rows, err
}

func (a *analyticsImpl) CategoryTotals(ctx context.Context, date time.Time) ([]model.CategoryTotal, error) {
	var rows []model.CategoryTotal

	err := a.selectRows(ctx, "CategoryTotals", &rows, categoryTotalsQuery, timezone.FormatDate(date))

	return rows, err
}

func (a *analyticsImpl) PaymentMethodTotals(ctx context.Context, date time.Time) ([]model.PaymentMethodTotal, error) {
	var rows []model.PaymentMethodTotal

	err := a.selectRows(ctx, "PaymentMethodTotals", &rows, paymentMethodTotalsQuery, timezone.FormatDate(date))

	return rows, err
}

func (a *analyticsImpl) selectRows(ctx context.Context, name string, dest any, query string, args ...any) error {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".sale."+name)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := a.db.Read.SelectContext(ctx, dest, query, args...)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to query %s: %w", name, err)
	}

	return nil
}
