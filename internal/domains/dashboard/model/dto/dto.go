package dto

import (
	saleModel "hotel/internal/domains/sale/model"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type Overview struct {
	TodaySales        decimal.Decimal `json:"today_sales"`
	TotalTransactions int             `json:"total_transactions"`
	OccupancyRate     decimal.Decimal `json:"occupancy_rate"`
	OccupiedRooms     int             `json:"occupied_rooms"`
	TotalRooms        int             `json:"total_rooms"`
}

type TrendPoint struct {
	Date             string          `json:"date"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	TransactionCount int             `json:"transaction_count"`
}

type LeaderboardEntry struct {
	EmployeeID   string          `json:"employee_id"`
	Name         string          `json:"name"`
	Total        decimal.Decimal `json:"total"`
	Transactions int             `json:"transactions"`
}

type Leaderboard struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
	PeriodDays  int                `json:"period_days"`
}

type CategoryBreakdown struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

func FromCategoryTotals(models []saleModel.CategoryTotal) []CategoryBreakdown {
	res := make([]CategoryBreakdown, len(models))
	for i, mod := range models {
		res[i] = CategoryBreakdown{Category: mod.Category, Total: mod.Total}
	}

	return res
}

type PaymentMethodBreakdown struct {
	PaymentMethod string          `json:"payment_method"`
	Count         int             `json:"count"`
	Total         decimal.Decimal `json:"total"`
}

func FromPaymentMethodTotals(models []saleModel.PaymentMethodTotal) []PaymentMethodBreakdown {
	res := make([]PaymentMethodBreakdown, len(models))
	for i, mod := range models {
		res[i] = PaymentMethodBreakdown{PaymentMethod: mod.PaymentMethod, Count: mod.Count, Total: mod.Total}
	}

	return res
}

func FromDailyTotal(model saleModel.DailyTotal) TrendPoint {
	return TrendPoint{
		Date:             timezone.FormatDate(model.SaleDate),
		TotalSales:       model.TotalSales,
		TransactionCount: model.TransactionCount,
	}
}
