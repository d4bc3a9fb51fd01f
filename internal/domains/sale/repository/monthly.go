package repository

//go:generate go run go.uber.org/mock/mockgen -source=./monthly.go -destination=../mocks/monthly_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/sale/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

// Monthly reads the monthly_sales_report view.
type Monthly interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MonthlySalesReport, error)
}

type monthlyRepositoryImpl struct {
	gRepo.Repository[model.MonthlySalesReport]
}

func NewMonthly(db *postgres.Connection, otel otel.Otel) Monthly {
	return &monthlyRepositoryImpl{
		Repository: gRepo.NewRepository[model.MonthlySalesReport](model.MonthlyEntityName, model.MonthlyTableName, model.FieldEmployeeID, db, otel),
	}
}
