package repository

//go:generate go run go.uber.org/mock/mockgen -source=./occupancy.go -destination=../mocks/occupancy_mock.go -package=mocks

import (
	"context"
	"time"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
)

var occupancyUpdateColumns = []string{
	"total_rooms",
	"occupied_rooms",
	"available_rooms",
	"maintenance_rooms",
	"occupancy_rate",
	"modified_at",
	"modified_by",
}

type Occupancy interface {
	LockTx(ctx context.Context, sqltx *sqlx.Tx, key string) error
	UpsertTx(ctx context.Context, sqltx *sqlx.Tx, report model.OccupancyReport) error
	GetByDate(ctx context.Context, date time.Time) (model.OccupancyReport, error)
}

type occupancyRepositoryImpl struct {
	gRepo.Repository[model.OccupancyReport]
}

func NewOccupancy(db *postgres.Connection, otel otel.Otel) Occupancy {
	return &occupancyRepositoryImpl{
		Repository: gRepo.NewRepository[model.OccupancyReport](model.OccupancyEntityName, model.OccupancyTableName, model.FieldID, db, otel),
	}
}

// UpsertTx keeps one row per report_date.
func (r *occupancyRepositoryImpl) UpsertTx(ctx context.Context, sqltx *sqlx.Tx, report model.OccupancyReport) error {
	return r.Repository.UpsertTx(ctx, sqltx, report, []string{model.FieldReportDate}, occupancyUpdateColumns) //nolint:wrapcheck
}

func (r *occupancyRepositoryImpl) GetByDate(ctx context.Context, date time.Time) (model.OccupancyReport, error) {
	return r.Get(ctx, gDto.And(gDto.Filter{ //nolint:wrapcheck
		Field:    model.FieldReportDate,
		Operator: gDto.FilterOperatorEq,
		Value:    timezone.FormatDate(date),
		Table:    model.OccupancyTableName,
	}))
}
