package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Sale=MockSaleService

import (
	"context"
	"fmt"
	"slices"
	"time"

	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/sale/model"
	"hotel/internal/domains/sale/model/dto"
	"hotel/internal/domains/sale/repository"
	userModel "hotel/internal/domains/user/model"
	userRepo "hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	errEmployeeIDRequired = "Employee ID required"
	errEmployeeNotFound   = "employee not found"
	errUnauthenticated    = "authentication required"
)

type Sale interface {
	Record(ctx context.Context, req dto.RecordSaleRequest) (dto.RecordSaleResponse, error)
	DailyForEmployee(ctx context.Context, employeeID, date string) ([]dto.SaleResponse, error)
	Monthly(ctx context.Context, year, month int, employeeID string) ([]dto.SaleResponse, error)
	DailySummary(ctx context.Context, date string) ([]dto.EmployeeTotalResponse, error)
	EmployeePerformance(ctx context.Context, employeeID string) ([]dto.DailySummaryResponse, error)
	Categories() []string
	PaymentMethods() []string
}

type serviceImpl struct {
	repo      repository.Sale
	summaries repository.Summary
	analytics repository.Analytics
	users     userRepo.User
	tx        postgres.Transactor
	events    kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Sale,
	summaries repository.Summary,
	analytics repository.Analytics,
	users userRepo.User,
	tx postgres.Transactor,
	events kafka.Client,
	otel otel.Otel,
) Sale {
	return &serviceImpl{
		repo:      repo,
		summaries: summaries,
		analytics: analytics,
		users:     users,
		tx:        tx,
		events:    events,
		otel:      otel,
	}
}

func byEmployeeAndDate(table, employeeID string, date time.Time) gDto.FilterGroup {
	return gDto.And(
		gDto.Filter{
			Field:    model.FieldEmployeeID,
			Operator: gDto.FilterOperatorEq,
			Value:    employeeID,
			Table:    table,
		},
		gDto.Filter{
			Field:    model.FieldSaleDate,
			Operator: gDto.FilterOperatorEq,
			Value:    timezone.FormatDate(date),
			Table:    table,
		},
	)
}

// saleDateRange selects from <= sale_date < to.
func saleDateRange(table string, from, to time.Time) []gDto.Filter {
	return []gDto.Filter{
		{
			ArgName:  "date_from",
			Field:    model.FieldSaleDate,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    timezone.FormatDate(from),
			Table:    table,
		},
		{
			ArgName:  "date_to",
			Field:    model.FieldSaleDate,
			Operator: gDto.FilterOperatorLess,
			Value:    timezone.FormatDate(to),
			Table:    table,
		},
	}
}

// Record stores a sale and rebuilds the employee's summary for that day in the same transaction.
func (s *serviceImpl) Record(ctx context.Context, req dto.RecordSaleRequest) (res dto.RecordSaleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	identity, ok := shared.GetIdentity(ctx)
	if !ok {
		return res, failure.Unauthorized(errUnauthenticated)
	}

	employeeID := identity.UserID

	if identity.IsPrivileged() {
		if req.EmployeeID == "" {
			return res, failure.BadRequestFromString(errEmployeeIDRequired)
		}

		employeeID = req.EmployeeID

		exists, err := s.users.Exist(ctx, shared.FilterByID(employeeID, userModel.FieldID, userModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if employee exists")

			return res, fmt.Errorf("failed to check if employee exists: %w", err)
		}

		if !exists {
			return res, failure.NotFound(errEmployeeNotFound)
		}
	}

	saleDate, err := shared.ParseDateParam(req.SaleDate)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	sale := req.ToModel(employeeID, identity.UserID, saleDate)

	var summary model.DailySalesSummary

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		// Serializes rebuilds of one (employee, day) so every rescan sees the sales committed before it.
		if err := s.summaries.LockTx(ctx, tx, employeeID+":"+timezone.FormatDate(saleDate)); err != nil {
			return fmt.Errorf("failed to lock daily summary: %w", err)
		}

		if err := s.repo.InsertTx(ctx, tx, sale); err != nil {
			return fmt.Errorf("failed to insert sale: %w", err)
		}

		daySales, err := s.repo.GetAllTx(ctx, tx, gDto.QueryParams{}, byEmployeeAndDate(model.TableName, employeeID, saleDate))
		if err != nil {
			return fmt.Errorf("failed to read sales of the day: %w", err)
		}

		summary = model.Summarize(employeeID, saleDate, daySales)
		summary.ID = uuid.NewString()
		summary.Metadata = gModel.NewMetadata(identity.UserID, timezone.Now())

		if err := s.summaries.UpsertTx(ctx, tx, summary); err != nil {
			return fmt.Errorf("failed to upsert daily summary: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("employee_id", employeeID).Msg("failed to record sale")

		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute("sale.id", sale.ID)
	log.Info().Str("sale_id", sale.ID).Str("employee_id", employeeID).Str("category", sale.Category).Msg("sale recorded")

	event := dto.SaleRecordedEvent{
		SaleID:     sale.ID,
		EmployeeID: employeeID,
		SaleDate:   timezone.FormatDate(saleDate),
		Category:   sale.Category,
		Amount:     sale.Amount,
		DayTotal:   summary.TotalSales,
	}

	if err := s.events.SendMessages(ctx, constant.TopicSaleRecorded, kafka.Message{Key: employeeID, Value: event}); err != nil {
		log.Error().Err(err).Str("sale_id", sale.ID).Msg("failed to publish sale event")
	}

	res.SaleID = sale.ID

	return res, nil
}

func (s *serviceImpl) DailyForEmployee(ctx context.Context, employeeID, date string) (res []dto.SaleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailyForEmployee")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if identity, ok := shared.GetIdentity(ctx); ok && !identity.CanAccessEmployee(employeeID) {
		return nil, failure.ResourceRestrictedError
	}

	saleDate, err := shared.ParseDateParam(date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	sales, err := s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirDesc},
		byEmployeeAndDate(model.TableName, employeeID, saleDate),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to get daily sales")

		return nil, fmt.Errorf("failed to get daily sales: %w", err)
	}

	return dto.FromModels(sales), nil
}

// Monthly lists the sales of a calendar month, optionally of a single employee.
func (s *serviceImpl) Monthly(ctx context.Context, year, month int, employeeID string) (res []dto.SaleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Monthly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, end, err := shared.MonthRangeParam(year, month)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	filters := saleDateRange(model.TableName, start, end)

	if employeeID != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldEmployeeID,
			Operator: gDto.FilterOperatorEq,
			Value:    employeeID,
			Table:    model.TableName,
		})
	}

	sales, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSaleDate, SortDir: gDto.SortDirAsc}, gDto.And(filters...))
	if err != nil {
		log.Error().Err(err).Msg("failed to get monthly sales")

		return nil, fmt.Errorf("failed to get monthly sales: %w", err)
	}

	return dto.FromModels(sales), nil
}

func (s *serviceImpl) DailySummary(ctx context.Context, date string) (res []dto.EmployeeTotalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailySummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	saleDate, err := shared.ParseDateParam(date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	totals, err := s.analytics.EmployeeTotals(ctx, saleDate, saleDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get daily summary")

		return nil, fmt.Errorf("failed to get daily summary: %w", err)
	}

	return dto.FromEmployeeTotals(totals), nil
}

// EmployeePerformance returns the daily summaries of the last 30 days, newest first.
func (s *serviceImpl) EmployeePerformance(ctx context.Context, employeeID string) (res []dto.DailySummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EmployeePerformance")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if identity, ok := shared.GetIdentity(ctx); ok && !identity.CanAccessEmployee(employeeID) {
		return nil, failure.ResourceRestrictedError
	}

	from, to := timezone.WindowEndingToday(constant.DefaultPerformanceDays)

	filters := append(saleDateRange(model.SummaryTableName, from, to.AddDate(0, 0, 1)), gDto.Filter{
		Field:    model.FieldEmployeeID,
		Operator: gDto.FilterOperatorEq,
		Value:    employeeID,
		Table:    model.SummaryTableName,
	})

	summaries, err := s.summaries.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldSaleDate, SortDir: gDto.SortDirDesc}, gDto.And(filters...))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee performance")

		return nil, fmt.Errorf("failed to get employee performance: %w", err)
	}

	return dto.FromSummaries(summaries), nil
}

func (s *serviceImpl) Categories() []string {
	return slices.Clone(constant.SaleCategories)
}

func (s *serviceImpl) PaymentMethods() []string {
	return slices.Clone(constant.PaymentMethods)
}
