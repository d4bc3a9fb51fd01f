package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Dashboard=MockDashboardService

import (
	"context"
	"fmt"

	"hotel/infras/otel"
	"hotel/internal/domains/dashboard/model/dto"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	saleRepo "hotel/internal/domains/sale/repository"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const errInvalidDays = "days must be between 1 and 365"

type Dashboard interface {
	Overview(ctx context.Context) (dto.Overview, error)
	SalesTrend(ctx context.Context, days int) ([]dto.TrendPoint, error)
	Leaderboard(ctx context.Context, days int) (dto.Leaderboard, error)
	CategoryBreakdown(ctx context.Context, date string) ([]dto.CategoryBreakdown, error)
	PaymentMethodBreakdown(ctx context.Context, date string) ([]dto.PaymentMethodBreakdown, error)
}

type serviceImpl struct {
	analytics saleRepo.Analytics
	rooms     roomRepo.Room
	occupancy roomRepo.Occupancy
	otel      otel.Otel
}

func New(analytics saleRepo.Analytics, rooms roomRepo.Room, occupancy roomRepo.Occupancy, otel otel.Otel) Dashboard {
	return &serviceImpl{
		analytics: analytics,
		rooms:     rooms,
		occupancy: occupancy,
		otel:      otel,
	}
}

func validateDays(days int) error {
	if days < 1 || days > constant.MaxWindowDays {
		return failure.BadRequestFromString(errInvalidDays)
	}

	return nil
}

// Overview reads occupancy from today's stored report and falls back to live room counts.
func (s *serviceImpl) Overview(ctx context.Context) (res dto.Overview, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Overview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.Today()

	totals, err := s.analytics.EmployeeTotals(ctx, today, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get today's sales")

		return res, fmt.Errorf("failed to get today's sales: %w", err)
	}

	res.TodaySales = decimal.Zero

	for _, total := range totals {
		res.TodaySales = res.TodaySales.Add(total.TotalSales)
		res.TotalTransactions += total.TransactionCount
	}

	report, err := s.occupancy.GetByDate(ctx, today)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy report")

		return res, fmt.Errorf("failed to get occupancy report: %w", err)
	}

	if report.ID == "" {
		counts, err := s.rooms.CountByStatus(ctx, nil)
		if err != nil {
			log.Error().Err(err).Msg("failed to count rooms")

			return res, fmt.Errorf("failed to count rooms: %w", err)
		}

		report = roomModel.NewOccupancyReport(counts, today)
	}

	res.OccupancyRate = report.OccupancyRate
	res.OccupiedRooms = report.OccupiedRooms
	res.TotalRooms = report.TotalRooms

	return res, nil
}

// SalesTrend returns one point per day of the window ending today, oldest first.
func (s *serviceImpl) SalesTrend(ctx context.Context, days int) (res []dto.TrendPoint, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SalesTrend")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validateDays(days); err != nil {
		return nil, err
	}

	from, to := timezone.WindowEndingToday(days)

	totals, err := s.analytics.DailyTotals(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sales trend")

		return nil, fmt.Errorf("failed to get sales trend: %w", err)
	}

	byDate := make(map[string]dto.TrendPoint, len(totals))
	for _, total := range totals {
		point := dto.FromDailyTotal(total)
		byDate[point.Date] = point
	}

	res = make([]dto.TrendPoint, 0, days)

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := timezone.FormatDate(day)

		point, ok := byDate[date]
		if !ok {
			point = dto.TrendPoint{Date: date, TotalSales: decimal.Zero}
		}

		res = append(res, point)
	}

	return res, nil
}

// Leaderboard ranks employees by total sales over the last days. Zero days means the default window.
func (s *serviceImpl) Leaderboard(ctx context.Context, days int) (res dto.Leaderboard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Leaderboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if days == 0 {
		days = constant.DefaultPerformanceDays
	}

	if err = validateDays(days); err != nil {
		return res, err
	}

	from, to := timezone.WindowEndingToday(days)

	totals, err := s.analytics.EmployeeTotals(ctx, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get leaderboard")

		return res, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	if len(totals) > constant.DefaultLeaderboardSize {
		totals = totals[:constant.DefaultLeaderboardSize]
	}

	res.PeriodDays = days
	res.Leaderboard = make([]dto.LeaderboardEntry, len(totals))

	for i, total := range totals {
		res.Leaderboard[i] = dto.LeaderboardEntry{
			EmployeeID:   total.EmployeeID,
			Name:         total.EmployeeName,
			Total:        total.TotalSales,
			Transactions: total.TransactionCount,
		}
	}

	return res, nil
}

func (s *serviceImpl) CategoryBreakdown(ctx context.Context, date string) (res []dto.CategoryBreakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CategoryBreakdown")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	saleDate, err := shared.ParseDateParam(date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	totals, err := s.analytics.CategoryTotals(ctx, saleDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get category breakdown")

		return nil, fmt.Errorf("failed to get category breakdown: %w", err)
	}

	return dto.FromCategoryTotals(totals), nil
}

func (s *serviceImpl) PaymentMethodBreakdown(ctx context.Context, date string) (res []dto.PaymentMethodBreakdown, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PaymentMethodBreakdown")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	saleDate, err := shared.ParseDateParam(date)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	totals, err := s.analytics.PaymentMethodTotals(ctx, saleDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payment method breakdown")

		return nil, fmt.Errorf("failed to get payment method breakdown: %w", err)
	}

	return dto.FromPaymentMethodTotals(totals), nil
}
