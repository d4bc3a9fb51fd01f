package dto

import (
	saleDto "hotel/internal/domains/sale/model/dto"

	"github.com/shopspring/decimal"
)

type DailyReport struct {
	Date              string                          `json:"date"`
	TotalSales        decimal.Decimal                 `json:"total_sales"`
	TotalTransactions int                             `json:"total_transactions"`
	Employees         []saleDto.EmployeeTotalResponse `json:"employees"`
}

type MonthlyEmployeeRow struct {
	EmployeeID       string          `json:"employee_id"`
	EmployeeName     string          `json:"employee_name"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	RoomSales        decimal.Decimal `json:"room_sales"`
	FoodSales        decimal.Decimal `json:"food_sales"`
	BeverageSales    decimal.Decimal `json:"beverage_sales"`
	ServiceSales     decimal.Decimal `json:"service_sales"`
	TransactionCount int             `json:"transaction_count"`
}

type MonthlyReport struct {
	Year              int                  `json:"year"`
	Month             int                  `json:"month"`
	TotalSales        decimal.Decimal      `json:"total_sales"`
	TotalTransactions int                  `json:"total_transactions"`
	Employees         []MonthlyEmployeeRow `json:"employees"`
}

type MonthTotal struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

type YearlyReport struct {
	Year             int             `json:"year"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	MonthlyBreakdown []MonthTotal    `json:"monthly_breakdown"`
}

type DailyPerformanceRow struct {
	Date          string          `json:"date"`
	TotalSales    decimal.Decimal `json:"total_sales"`
	RoomSales     decimal.Decimal `json:"room_sales"`
	FoodSales     decimal.Decimal `json:"food_sales"`
	BeverageSales decimal.Decimal `json:"beverage_sales"`
	ServiceSales  decimal.Decimal `json:"service_sales"`
	Transactions  int             `json:"transactions"`
}

type PerformanceReport struct {
	EmployeeID       string                `json:"employee_id"`
	Period           string                `json:"period"`
	Days             int                   `json:"days"`
	TotalSales       decimal.Decimal       `json:"total_sales"`
	AvgDailySales    decimal.Decimal       `json:"avg_daily_sales"`
	DailyPerformance []DailyPerformanceRow `json:"daily_performance"`
}

// ExportFile is a rendered report ready to be sent as an attachment.
type ExportFile struct {
	FileName    string
	ContentType string
	Data        []byte
}
