package repository

//go:generate go run go.uber.org/mock/mockgen -source=./summary.go -destination=../mocks/summary_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/sale/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

var (
	summaryConflictColumns = []string{model.FieldEmployeeID, model.FieldSaleDate}
	summaryUpdateColumns   = []string{
		"total_sales",
		"room_sales",
		"food_sales",
		"beverage_sales",
		"service_sales",
		"transaction_count",
		"modified_at",
		"modified_by",
	}
)

type Summary interface {
	LockTx(ctx context.Context, sqltx *sqlx.Tx, key string) error
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, summary model.DailySalesSummary) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DailySalesSummary, error)
}

type summaryRepositoryImpl struct {
	gRepo.Repository[model.DailySalesSummary]
}

func NewSummary(db *postgres.Connection, otel otel.Otel) Summary {
	return &summaryRepositoryImpl{
		Repository: gRepo.NewRepository[model.DailySalesSummary](model.SummaryEntityName, model.SummaryTableName, model.FieldID, db, otel),
	}
}

// UpsertTx replaces the totals of the (employee_id, sale_date) row.
func (r *summaryRepositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, summary model.DailySalesSummary) error {
	return r.Repository.UpsertTx(ctx, sqltx, summary, summaryConflictColumns, summaryUpdateColumns) //nolint:wrapcheck
}
