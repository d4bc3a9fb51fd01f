package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/sale/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Sale interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Sale) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Sale, error)
	GetAllTx(ctx context.Context, sqltx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Sale, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Sale]
}

func New(db *postgres.Connection, otel otel.Otel) Sale {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Sale](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
