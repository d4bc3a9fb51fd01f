package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Report=MockReportService

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/report/model/dto"
	saleModel "hotel/internal/domains/sale/model"
	saleDto "hotel/internal/domains/sale/model/dto"
	saleRepo "hotel/internal/domains/sale/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/export"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	errInvalidPeriod     = "period must be week, month, quarter, year or a number of days between 1 and 365"
	errUnsupportedFormat = "format must be excel or pdf"
)

var (
	dailyExportColumns   = []string{"Employee", "Total Sales", "Transactions"}
	monthlyExportColumns = []string{"Employee", "Total Sales", "Room Sales", "Food Sales", "Beverage Sales", "Service Sales"}
)

type Report interface {
	Daily(ctx context.Context, date string) (dto.DailyReport, error)
	Monthly(ctx context.Context, year, month int) (dto.MonthlyReport, error)
	Yearly(ctx context.Context, year int) (dto.YearlyReport, error)
	EmployeePerformance(ctx context.Context, employeeID, period string) (dto.PerformanceReport, error)
	ExportDaily(ctx context.Context, date, format string) (dto.ExportFile, error)
	ExportMonthly(ctx context.Context, year, month int, format string) (dto.ExportFile, error)
}

type serviceImpl struct {
	summaries saleRepo.Summary
	monthly   saleRepo.Monthly
	analytics saleRepo.Analytics
	s3        s3.S3
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	summaries saleRepo.Summary,
	monthly saleRepo.Monthly,
	analytics saleRepo.Analytics,
	s3 s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		summaries: summaries,
		monthly:   monthly,
		analytics: analytics,
		s3:        s3,
		cfg:       cfg,
		otel:      otel,
	}
}

// PeriodDays resolves a named period or a plain day count.
func PeriodDays(period string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case constant.PeriodWeek:
		return constant.DaysInWeek, nil
	case constant.PeriodMonth:
		return constant.DaysInMonthWindow, nil
	case constant.PeriodQuarter:
		return constant.DaysInQuarterWindow, nil
	case constant.PeriodYear:
		return constant.DaysInYearWindow, nil
	}

	days, err := strconv.Atoi(strings.TrimSpace(period))
	if err != nil || days < 1 || days > constant.MaxWindowDays {
		return 0, failure.BadRequestFromString(errInvalidPeriod)
	}

	return days, nil
}

func (s *serviceImpl) Daily(ctx context.Context, date string) (res dto.DailyReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Daily")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reportDate, err := shared.ParseDateParam(date)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	totals, err := s.analytics.EmployeeTotals(ctx, reportDate, reportDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get daily report")

		return res, fmt.Errorf("failed to get daily report: %w", err)
	}

	res.Date = timezone.FormatDate(reportDate)
	res.TotalSales = decimal.Zero
	res.Employees = saleDto.FromEmployeeTotals(totals)

	for _, total := range totals {
		res.TotalSales = res.TotalSales.Add(total.TotalSales)
		res.TotalTransactions += total.TransactionCount
	}

	return res, nil
}

func (s *serviceImpl) Monthly(ctx context.Context, year, month int) (res dto.MonthlyReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Monthly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = shared.MonthRangeParam(year, month); err != nil {
		return res, err //nolint:wrapcheck
	}

	rows, err := s.monthly.GetAll(ctx,
		gDto.QueryParams{SortBy: "total_sales", SortDir: gDto.SortDirDesc},
		gDto.And(
			gDto.Filter{Field: saleModel.FieldYear, Operator: gDto.FilterOperatorEq, Value: year, Table: saleModel.MonthlyTableName},
			gDto.Filter{Field: saleModel.FieldMonth, Operator: gDto.FilterOperatorEq, Value: month, Table: saleModel.MonthlyTableName},
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly report")

		return res, fmt.Errorf("failed to get monthly report: %w", err)
	}

	res.Year = year
	res.Month = month
	res.TotalSales = decimal.Zero
	res.Employees = make([]dto.MonthlyEmployeeRow, len(rows))

	for i, row := range rows {
		res.Employees[i] = dto.MonthlyEmployeeRow{
			EmployeeID:       row.EmployeeID,
			EmployeeName:     row.EmployeeName,
			TotalSales:       row.TotalSales,
			RoomSales:        row.RoomSales,
			FoodSales:        row.FoodSales,
			BeverageSales:    row.BeverageSales,
			ServiceSales:     row.ServiceSales,
			TransactionCount: row.TransactionCount,
		}

		res.TotalSales = res.TotalSales.Add(row.TotalSales)
		res.TotalTransactions += row.TransactionCount
	}

	return res, nil
}

// Yearly folds the monthly view into twelve months. Months without sales report zero.
func (s *serviceImpl) Yearly(ctx context.Context, year int) (res dto.YearlyReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Yearly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = shared.MonthRangeParam(year, 1); err != nil {
		return res, err //nolint:wrapcheck
	}

	rows, err := s.monthly.GetAll(ctx,
		gDto.QueryParams{SortBy: saleModel.FieldMonth, SortDir: gDto.SortDirAsc},
		gDto.And(gDto.Filter{Field: saleModel.FieldYear, Operator: gDto.FilterOperatorEq, Value: year, Table: saleModel.MonthlyTableName}),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get yearly report")

		return res, fmt.Errorf("failed to get yearly report: %w", err)
	}

	res.Year = year
	res.TotalSales = decimal.Zero
	res.MonthlyBreakdown = make([]dto.MonthTotal, constant.MonthsInYear)

	for i := range res.MonthlyBreakdown {
		res.MonthlyBreakdown[i] = dto.MonthTotal{Month: i + 1, Total: decimal.Zero}
	}

	for _, row := range rows {
		if row.Month < 1 || row.Month > constant.MonthsInYear {
			continue
		}

		month := &res.MonthlyBreakdown[row.Month-1]
		month.Total = month.Total.Add(row.TotalSales)
		res.TotalSales = res.TotalSales.Add(row.TotalSales)
	}

	return res, nil
}

// EmployeePerformance averages over the days that have a summary, not over the whole window.
func (s *serviceImpl) EmployeePerformance(ctx context.Context, employeeID, period string) (res dto.PerformanceReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EmployeePerformance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if identity, ok := shared.GetIdentity(ctx); ok && !identity.CanAccessEmployee(employeeID) {
		return res, failure.ResourceRestrictedError
	}

	days, err := PeriodDays(period)
	if err != nil {
		return res, err
	}

	from, to := timezone.WindowEndingToday(days)

	summaries, err := s.summaries.GetAll(ctx,
		gDto.QueryParams{SortBy: saleModel.FieldSaleDate, SortDir: gDto.SortDirAsc},
		gDto.And(
			gDto.Filter{
				Field:    saleModel.FieldEmployeeID,
				Operator: gDto.FilterOperatorEq,
				Value:    employeeID,
				Table:    saleModel.SummaryTableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    saleModel.FieldSaleDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    timezone.FormatDate(from),
				Table:    saleModel.SummaryTableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    saleModel.FieldSaleDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    timezone.FormatDate(to),
				Table:    saleModel.SummaryTableName,
			},
		),
	)
	if err != nil {
		log.Error().Err(err).Str("employee_id", employeeID).Msg("failed to get employee performance")

		return res, fmt.Errorf("failed to get employee performance: %w", err)
	}

	res.EmployeeID = employeeID
	res.Period = period
	res.Days = days
	res.TotalSales = decimal.Zero
	res.AvgDailySales = decimal.Zero
	res.DailyPerformance = make([]dto.DailyPerformanceRow, len(summaries))

	for i, summary := range summaries {
		res.DailyPerformance[i] = dto.DailyPerformanceRow{
			Date:          timezone.FormatDate(summary.SaleDate),
			TotalSales:    summary.TotalSales,
			RoomSales:     summary.RoomSales,
			FoodSales:     summary.FoodSales,
			BeverageSales: summary.BeverageSales,
			ServiceSales:  summary.ServiceSales,
			Transactions:  summary.TransactionCount,
		}

		res.TotalSales = res.TotalSales.Add(summary.TotalSales)
	}

	if len(summaries) > 0 {
		res.AvgDailySales = res.TotalSales.
			Div(decimal.NewFromInt(int64(len(summaries)))).
			Round(constant.DecimalPlacesCurrency)
	}

	return res, nil
}

func (s *serviceImpl) ExportDaily(ctx context.Context, date, format string) (res dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportDaily")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	format, err = normalizeFormat(format)
	if err != nil {
		return res, err
	}

	report, err := s.Daily(ctx, date)
	if err != nil {
		return res, err
	}

	table := export.Table{
		Title:   "Daily Sales Report - " + report.Date,
		Columns: dailyExportColumns,
		Rows:    make([][]any, 0, len(report.Employees)),
	}

	for _, employee := range report.Employees {
		table.Rows = append(table.Rows, []any{employee.EmployeeName, employee.TotalSales, employee.Transactions})
	}

	return s.render(ctx, fmt.Sprintf("daily_report_%s", report.Date), format, table)
}

func (s *serviceImpl) ExportMonthly(ctx context.Context, year, month int, format string) (res dto.ExportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportMonthly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	format, err = normalizeFormat(format)
	if err != nil {
		return res, err
	}

	report, err := s.Monthly(ctx, year, month)
	if err != nil {
		return res, err
	}

	table := export.Table{
		Title:   fmt.Sprintf("Monthly Sales Report - %04d-%02d", year, month),
		Columns: monthlyExportColumns,
		Rows:    make([][]any, 0, len(report.Employees)),
	}

	for _, employee := range report.Employees {
		table.Rows = append(table.Rows, []any{
			employee.EmployeeName,
			employee.TotalSales,
			employee.RoomSales,
			employee.FoodSales,
			employee.BeverageSales,
			employee.ServiceSales,
		})
	}

	return s.render(ctx, fmt.Sprintf("monthly_report_%04d_%02d", year, month), format, table)
}

func normalizeFormat(format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return constant.DefaultExportFormat, nil
	}

	if !export.IsSupported(format) {
		return "", failure.BadRequestFromString(errUnsupportedFormat)
	}

	return format, nil
}

// render builds the attachment and archives a copy when archiving is enabled.
func (s *serviceImpl) render(ctx context.Context, baseName, format string, table export.Table) (dto.ExportFile, error) {
	data, err := export.Render(format, table, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("report", baseName).Msg("failed to render export")

		if errors.Is(err, export.ErrUnsupportedFormat) {
			return dto.ExportFile{}, failure.BadRequestFromString(errUnsupportedFormat)
		}

		return dto.ExportFile{}, failure.InternalError(fmt.Errorf("failed to render export: %w", err))
	}

	file := dto.ExportFile{
		FileName:    baseName + "." + export.Extension(format),
		ContentType: export.ContentType(format),
		Data:        data,
	}

	if s.cfg != nil && s.cfg.External.S3.ArchiveExports {
		s.archive(ctx, file)
	}

	return file, nil
}

func (s *serviceImpl) archive(ctx context.Context, file dto.ExportFile) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	url, err := s.s3.UploadFileBytes(ctx, "", constant.ExportArchiveDir, file.FileName, file.ContentType, file.Data)
	if err != nil {
		log.Error().Err(err).Str("file_name", file.FileName).Msg("failed to archive export")

		return
	}

	log.Info().Str("file_name", file.FileName).Str("url", url).Msg("export archived")
}
