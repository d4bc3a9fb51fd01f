package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/logger"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (model.Room, error)
	UpdateTx(ctx context.Context, sqltx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	CountByStatus(ctx context.Context, sqltx *sqlx.Tx) (model.StatusCounts, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const countByStatusQuery = `SELECT
	COUNT(*) AS total,
	COUNT(*) FILTER (WHERE status = $1) AS occupied,
	COUNT(*) FILTER (WHERE status = $2) AS maintenance
FROM rooms`

// CountByStatus counts rooms per status. With a nil sqltx it reads from the read pool.
func (r *repositoryImpl) CountByStatus(ctx context.Context, sqltx *sqlx.Tx) (model.StatusCounts, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.CountByStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, countByStatusQuery)

	var (
		counts model.StatusCounts
		err    error
	)

	if sqltx != nil {
		err = sqltx.GetContext(ctx, &counts, countByStatusQuery, constant.RoomStatusOccupied, constant.RoomStatusMaintenance)
	} else {
		err = r.db.Read.GetContext(ctx, &counts, countByStatusQuery, constant.RoomStatusOccupied, constant.RoomStatusMaintenance)
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return counts, fmt.Errorf("failed to count rooms by status: %w", err)
	}

	return counts, nil
}
