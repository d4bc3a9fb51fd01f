package repository

//go:generate go run go.uber.org/mock/mockgen -source=./checkin.go -destination=../mocks/checkin_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CheckIn interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.CheckIn) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.CheckIn, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	ListActive(ctx context.Context) ([]model.ActiveCheckIn, error)
}

type checkInRepositoryImpl struct {
	gRepo.Repository[model.CheckIn]
	active gRepo.Repository[model.ActiveCheckIn]
}

func NewCheckIn(db *postgres.Connection, otel otel.Otel) CheckIn {
	return &checkInRepositoryImpl{
		Repository: gRepo.NewRepository[model.CheckIn](model.CheckInEntityName, model.CheckInTableName, model.FieldCheckInID, db, otel),
		active:     gRepo.NewRepository[model.ActiveCheckIn](model.CheckInEntityName, model.CheckInTableName, model.FieldCheckInID, db, otel),
	}
}

// ListActive returns the open stays with their room and employee, earliest arrival first.
func (r *checkInRepositoryImpl) ListActive(ctx context.Context) ([]model.ActiveCheckIn, error) {
	return r.active.GetAll(ctx, //nolint:wrapcheck
		gDto.QueryParams{SortBy: model.FieldCheckInDate, SortDir: gDto.SortDirAsc},
		gDto.And(gDto.Filter{
			Field:    model.FieldCheckInStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    constant.CheckInStatusActive,
			Table:    model.CheckInTableName,
		}),
	)
}
