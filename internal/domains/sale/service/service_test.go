package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	pgMocks "hotel/infras/postgres/mocks"
	saleMocks "hotel/internal/domains/sale/mocks"
	"hotel/internal/domains/sale/model"
	"hotel/internal/domains/sale/model/dto"
	"hotel/internal/domains/sale/service"
	userMocks "hotel/internal/domains/user/mocks"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *saleMocks.MockSale
	summaries *saleMocks.MockSummary
	analytics *saleMocks.MockAnalytics
	users     *userMocks.MockUser
	tx        *pgMocks.MockTransactor
	events    *kafkaMocks.MockClient
	svc       service.Sale
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      saleMocks.NewMockSale(ctrl),
		summaries: saleMocks.NewMockSummary(ctrl),
		analytics: saleMocks.NewMockAnalytics(ctrl),
		users:     userMocks.NewMockUser(ctrl),
		tx:        pgMocks.NewMockTransactor(ctrl),
		events:    kafkaMocks.NewMockClient(ctrl),
	}

	f.svc = service.New(f.repo, f.summaries, f.analytics, f.users, f.tx, f.events, mocks.NewOtel())

	return f
}

func identityCtx(id, role string) context.Context {
	return shared.WithIdentity(context.Background(), shared.Identity{UserID: id, Username: id, Role: role})
}

func TestSaleService_Record(t *testing.T) {
	food := dto.RecordSaleRequest{SaleDate: "2024-01-01", Category: constant.CategoryFood, Amount: decimal.NewFromInt(20)}

	tests := []struct {
		name     string
		ctx      context.Context
		req      dto.RecordSaleRequest
		setup    func(f *fixture)
		wantCode int
		wantMsg  string
	}{
		{
			name: "employee records for self and summary is rebuilt",
			ctx:  identityCtx("emp-1", constant.RoleEmployee),
			req:  dto.RecordSaleRequest{SaleDate: "2024-01-01", Category: constant.CategoryFood, Amount: decimal.NewFromInt(20), EmployeeID: "emp-2"},
			setup: func(f *fixture) {
				f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunTransaction)
				lock := f.summaries.EXPECT().LockTx(gomock.Any(), gomock.Any(), "emp-1:2024-01-01").Return(nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).After(lock).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, sale model.Sale) error {
					assert.Equal(t, "emp-1", sale.EmployeeID)
					assert.Equal(t, "2024-01-01", sale.SaleDate.Format(constant.DateFormat))

					return nil
				})
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).After(lock).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Sale, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "emp-1", args[model.FieldEmployeeID])
						assert.Equal(t, "2024-01-01", args[model.FieldSaleDate])

						return []model.Sale{
							{Category: constant.CategoryRoom, Amount: decimal.NewFromInt(30)},
							{Category: constant.CategoryFood, Amount: decimal.NewFromInt(20)},
						}, nil
					})
				f.summaries.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, summary model.DailySalesSummary) error {
						assert.True(t, summary.TotalSales.Equal(decimal.NewFromInt(50)))
						assert.True(t, summary.FoodSales.Equal(decimal.NewFromInt(20)))
						assert.True(t, summary.RoomSales.Equal(decimal.NewFromInt(30)))
						assert.Equal(t, 2, summary.TransactionCount)
						assert.NotEmpty(t, summary.ID)

						return nil
					})
				f.events.EXPECT().SendMessages(gomock.Any(), constant.TopicSaleRecorded, gomock.Any()).Return(nil)
			},
		},
		{
			name:     "manager without employee id",
			ctx:      identityCtx("mgr-1", constant.RoleManager),
			req:      food,
			setup:    func(_ *fixture) {},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Employee ID required",
		},
		{
			name: "manager records for unknown employee",
			ctx:  identityCtx("mgr-1", constant.RoleManager),
			req:  dto.RecordSaleRequest{SaleDate: "2024-01-01", Category: constant.CategoryFood, Amount: decimal.NewFromInt(20), EmployeeID: "ghost"},
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "manager records for an employee",
			ctx:  identityCtx("mgr-1", constant.RoleManager),
			req:  dto.RecordSaleRequest{SaleDate: "2024-01-01", Category: constant.CategoryRoom, Amount: decimal.NewFromInt(30), EmployeeID: "emp-2"},
			setup: func(f *fixture) {
				f.users.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunTransaction)
				f.summaries.EXPECT().LockTx(gomock.Any(), gomock.Any(), "emp-2:2024-01-01").Return(nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, _ *sqlx.Tx, sale model.Sale) error {
					assert.Equal(t, "emp-2", sale.EmployeeID)
					assert.Equal(t, "mgr-1", sale.CreatedBy)

					return nil
				})
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Sale{{Category: constant.CategoryRoom, Amount: decimal.NewFromInt(30)}}, nil)
				f.summaries.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.events.EXPECT().SendMessages(gomock.Any(), constant.TopicSaleRecorded, gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "summary failure fails the sale",
			ctx:  identityCtx("emp-1", constant.RoleEmployee),
			req:  food,
			setup: func(f *fixture) {
				f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunTransaction)
				f.summaries.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().GetAllTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
				f.summaries.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "summary lock failure stores nothing",
			ctx:  identityCtx("emp-1", constant.RoleEmployee),
			req:  food,
			setup: func(f *fixture) {
				f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunTransaction)
				f.summaries.EXPECT().LockTx(gomock.Any(), gomock.Any(), "emp-1:2024-01-01").Return(errors.New("lock timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:     "malformed date",
			ctx:      identityCtx("emp-1", constant.RoleEmployee),
			req:      dto.RecordSaleRequest{SaleDate: "2024-02-30", Category: constant.CategoryFood, Amount: decimal.NewFromInt(20)},
			setup:    func(_ *fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "anonymous caller",
			ctx:      context.Background(),
			req:      food,
			setup:    func(_ *fixture) {},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Record(tt.ctx, tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.SaleID)
		})
	}
}

func TestSaleService_DailyForEmployee(t *testing.T) {
	t.Run("employee reading another employee", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.DailyForEmployee(identityCtx("emp-1", constant.RoleEmployee), "emp-2", "2024-01-01")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("manager reads any employee", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Sale, error) {
				assert.Equal(t, constant.FieldCreatedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return []model.Sale{{
					ID:         "sale-1",
					EmployeeID: "emp-2",
					SaleDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
					Category:   constant.CategoryFood,
					Amount:     decimal.NewFromInt(20),
				}}, nil
			})

		res, err := f.svc.DailyForEmployee(identityCtx("mgr-1", constant.RoleManager), "emp-2", "2024-01-01")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "sale-1", res[0].SaleID)
		assert.Equal(t, "2024-01-01", res[0].SaleDate)
	})
}

func TestSaleService_Monthly(t *testing.T) {
	t.Run("month range is bound as parameters", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Sale, error) {
				where, args := filter.GetWhereClause()

				assert.Equal(t, "(sales.sale_date >= :date_from AND sales.sale_date < :date_to AND sales.employee_id = :employee_id)", where)
				assert.Equal(t, "2024-02-01", args["date_from"])
				assert.Equal(t, "2024-03-01", args["date_to"])
				assert.Equal(t, "emp-1", args["employee_id"])

				return nil, nil
			})

		res, err := f.svc.Monthly(context.Background(), 2024, 2, "emp-1")

		require.NoError(t, err)
		assert.Empty(t, res)
	})

	t.Run("invalid month", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Monthly(context.Background(), 2024, 13, "")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestSaleService_DailySummary(t *testing.T) {
	f := newFixture(t)

	f.analytics.EXPECT().EmployeeTotals(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, from, to time.Time) ([]model.EmployeeTotal, error) {
			assert.Equal(t, from, to)

			return []model.EmployeeTotal{{EmployeeID: "emp-1", EmployeeName: "Waiter One", TotalSales: decimal.NewFromInt(50), TransactionCount: 2}}, nil
		})

	res, err := f.svc.DailySummary(context.Background(), "2024-01-01")

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "emp-1", res[0].UserID)
	assert.Equal(t, 2, res[0].Transactions)
}

func TestSaleService_EmployeePerformance(t *testing.T) {
	t.Run("self access", func(t *testing.T) {
		f := newFixture(t)

		f.summaries.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.DailySalesSummary, error) {
				assert.Equal(t, model.FieldSaleDate, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				_, args := filter.GetWhereClause()
				assert.Equal(t, "emp-1", args["employee_id"])

				return []model.DailySalesSummary{{ID: "sum-1", EmployeeID: "emp-1", TotalSales: decimal.NewFromInt(50)}}, nil
			})

		res, err := f.svc.EmployeePerformance(identityCtx("emp-1", constant.RoleEmployee), "emp-1")

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Equal(t, "sum-1", res[0].SummaryID)
	})

	t.Run("other employee is restricted", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.EmployeePerformance(identityCtx("emp-1", constant.RoleEmployee), "emp-2")

		assert.ErrorIs(t, err, failure.ResourceRestrictedError)
	})
}

func TestSaleService_Enumerations(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, []string{"Room", "Food", "Beverage", "Services", "Other"}, f.svc.Categories())
	assert.Equal(t, []string{"Cash", "Card", "Mobile", "Check", "Online"}, f.svc.PaymentMethods())
}
