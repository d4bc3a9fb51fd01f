package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/report/service"
	saleMocks "hotel/internal/domains/sale/mocks"
	saleModel "hotel/internal/domains/sale/model"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	summaries *saleMocks.MockSummary
	monthly   *saleMocks.MockMonthly
	analytics *saleMocks.MockAnalytics
	s3        *s3Mocks.MockS3
	cfg       *config.Config
	svc       service.Report
}

func newFixture(t *testing.T, archive bool) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		summaries: saleMocks.NewMockSummary(ctrl),
		monthly:   saleMocks.NewMockMonthly(ctrl),
		analytics: saleMocks.NewMockAnalytics(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
		cfg:       &config.Config{},
	}

	f.cfg.External.S3.ArchiveExports = archive
	f.svc = service.New(f.summaries, f.monthly, f.analytics, f.s3, f.cfg, mocks.NewOtel())

	return f
}

func dailyTotals() []saleModel.EmployeeTotal {
	return []saleModel.EmployeeTotal{
		{EmployeeID: "emp-1", EmployeeName: "Waiter One", TotalSales: decimal.NewFromInt(50), TransactionCount: 2},
		{EmployeeID: "emp-2", EmployeeName: "Waiter Two", TotalSales: decimal.RequireFromString("12.50"), TransactionCount: 1},
	}
}

func TestPeriodDays(t *testing.T) {
	tests := []struct {
		period  string
		want    int
		wantErr bool
	}{
		{period: "week", want: 7},
		{period: "Month", want: 30},
		{period: "quarter", want: 90},
		{period: "year", want: 365},
		{period: "14", want: 14},
		{period: "0", wantErr: true},
		{period: "366", wantErr: true},
		{period: "fortnight", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			days, err := service.PeriodDays(tt.period)

			if tt.wantErr {
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, days)
		})
	}
}

func TestReportService_Daily(t *testing.T) {
	t.Run("grand totals", func(t *testing.T) {
		f := newFixture(t, false)

		f.analytics.EXPECT().EmployeeTotals(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, from, to time.Time) ([]saleModel.EmployeeTotal, error) {
				assert.Equal(t, from, to)

				return dailyTotals(), nil
			})

		res, err := f.svc.Daily(context.Background(), "2024-01-01")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-01", res.Date)
		assert.True(t, res.TotalSales.Equal(decimal.RequireFromString("62.50")))
		assert.Equal(t, 3, res.TotalTransactions)
		assert.Len(t, res.Employees, 2)
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.Daily(context.Background(), "01-01-2024")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("query failure", func(t *testing.T) {
		f := newFixture(t, false)

		f.analytics.EXPECT().EmployeeTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := f.svc.Daily(context.Background(), "2024-01-01")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestReportService_Monthly(t *testing.T) {
	f := newFixture(t, false)

	f.monthly.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]saleModel.MonthlySalesReport, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "(monthly_sales_report.year = :year AND monthly_sales_report.month = :month)", where)
			assert.Equal(t, 2024, args["year"])
			assert.Equal(t, 2, args["month"])

			return []saleModel.MonthlySalesReport{
				{EmployeeID: "emp-1", EmployeeName: "Waiter One", Year: 2024, Month: 2, TotalSales: decimal.NewFromInt(80), RoomSales: decimal.NewFromInt(60), FoodSales: decimal.NewFromInt(20), TransactionCount: 3},
				{EmployeeID: "emp-2", EmployeeName: "Waiter Two", Year: 2024, Month: 2, TotalSales: decimal.NewFromInt(20), BeverageSales: decimal.NewFromInt(20), TransactionCount: 1},
			}, nil
		})

	res, err := f.svc.Monthly(context.Background(), 2024, 2)

	require.NoError(t, err)
	assert.True(t, res.TotalSales.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 4, res.TotalTransactions)
	require.Len(t, res.Employees, 2)
	assert.True(t, res.Employees[0].RoomSales.Equal(decimal.NewFromInt(60)))
}

func TestReportService_Yearly(t *testing.T) {
	t.Run("months without sales are zero", func(t *testing.T) {
		f := newFixture(t, false)

		f.monthly.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]saleModel.MonthlySalesReport{
			{EmployeeID: "emp-1", Year: 2024, Month: 2, TotalSales: decimal.NewFromInt(100)},
			{EmployeeID: "emp-2", Year: 2024, Month: 2, TotalSales: decimal.NewFromInt(50)},
			{EmployeeID: "emp-1", Year: 2024, Month: 12, TotalSales: decimal.NewFromInt(25)},
		}, nil)

		res, err := f.svc.Yearly(context.Background(), 2024)

		require.NoError(t, err)
		require.Len(t, res.MonthlyBreakdown, 12)
		assert.Equal(t, 1, res.MonthlyBreakdown[0].Month)
		assert.True(t, res.MonthlyBreakdown[0].Total.IsZero())
		assert.True(t, res.MonthlyBreakdown[1].Total.Equal(decimal.NewFromInt(150)))
		assert.True(t, res.MonthlyBreakdown[11].Total.Equal(decimal.NewFromInt(25)))
		assert.True(t, res.TotalSales.Equal(decimal.NewFromInt(175)))
	})

	t.Run("invalid year", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.Yearly(context.Background(), 0)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReportService_EmployeePerformance(t *testing.T) {
	employeeCtx := shared.WithIdentity(context.Background(), shared.Identity{UserID: "emp-1", Role: constant.RoleEmployee})

	t.Run("average over active days", func(t *testing.T) {
		f := newFixture(t, false)

		f.summaries.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]saleModel.DailySalesSummary, error) {
				assert.Equal(t, gDto.SortDirAsc, params.SortDir)

				_, args := filter.GetWhereClause()
				assert.Equal(t, "emp-1", args["employee_id"])
				assert.Contains(t, args, "date_from")
				assert.Contains(t, args, "date_to")

				return []saleModel.DailySalesSummary{
					{EmployeeID: "emp-1", SaleDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), TotalSales: decimal.NewFromInt(10), TransactionCount: 1},
					{EmployeeID: "emp-1", SaleDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), TotalSales: decimal.NewFromInt(10), TransactionCount: 1},
					{EmployeeID: "emp-1", SaleDate: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), TotalSales: decimal.NewFromInt(10), TransactionCount: 2},
				}, nil
			})

		res, err := f.svc.EmployeePerformance(employeeCtx, "emp-1", "week")

		require.NoError(t, err)
		assert.Equal(t, 7, res.Days)
		assert.True(t, res.TotalSales.Equal(decimal.NewFromInt(30)))
		assert.True(t, res.AvgDailySales.Equal(decimal.NewFromInt(10)))
		require.Len(t, res.DailyPerformance, 3)
		assert.Equal(t, "2024-01-03", res.DailyPerformance[1].Date)
	})

	t.Run("no activity", func(t *testing.T) {
		f := newFixture(t, false)

		f.summaries.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.EmployeePerformance(employeeCtx, "emp-1", "30")

		require.NoError(t, err)
		assert.True(t, res.AvgDailySales.IsZero())
		assert.Empty(t, res.DailyPerformance)
	})

	t.Run("other employee", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.EmployeePerformance(employeeCtx, "emp-2", "week")

		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("invalid period", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.EmployeePerformance(employeeCtx, "emp-1", "decade")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReportService_ExportDaily(t *testing.T) {
	t.Run("excel by default", func(t *testing.T) {
		f := newFixture(t, false)

		f.analytics.EXPECT().EmployeeTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(dailyTotals(), nil)

		file, err := f.svc.ExportDaily(context.Background(), "2024-01-01", "")

		require.NoError(t, err)
		assert.Equal(t, "daily_report_2024-01-01.xlsx", file.FileName)
		assert.Equal(t, constant.ContentTypeXLSX, file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Data, []byte("PK")))
	})

	t.Run("archive failure is not surfaced", func(t *testing.T) {
		f := newFixture(t, true)

		f.analytics.EXPECT().EmployeeTotals(gomock.Any(), gomock.Any(), gomock.Any()).Return(dailyTotals(), nil)
		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), "", constant.ExportArchiveDir, "daily_report_2024-01-01.pdf", constant.ContentTypePDF, gomock.Any()).
			Return("", errors.New("bucket unavailable"))

		file, err := f.svc.ExportDaily(context.Background(), "2024-01-01", "PDF")

		require.NoError(t, err)
		assert.Equal(t, constant.ContentTypePDF, file.ContentType)
		assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
	})

	t.Run("unsupported format", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.ExportDaily(context.Background(), "2024-01-01", "csv")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestReportService_ExportMonthly(t *testing.T) {
	f := newFixture(t, true)

	f.monthly.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]saleModel.MonthlySalesReport{
		{EmployeeID: "emp-1", EmployeeName: "Waiter One", Year: 2024, Month: 2, TotalSales: decimal.NewFromInt(80)},
	}, nil)
	f.s3.EXPECT().
		UploadFileBytes(gomock.Any(), "", constant.ExportArchiveDir, "monthly_report_2024_02.xlsx", constant.ContentTypeXLSX, gomock.Any()).
		Return("https://files.example.com/exports/monthly_report_2024_02.xlsx", nil)

	file, err := f.svc.ExportMonthly(context.Background(), 2024, 2, "excel")

	require.NoError(t, err)
	assert.Equal(t, "monthly_report_2024_02.xlsx", file.FileName)
	assert.NotEmpty(t, file.Data)
}
