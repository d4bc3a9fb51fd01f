package model

import (
	"time"

	"hotel/shared/constant"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "sales"
	EntityName = "sale"

	FieldID            = "id"
	FieldEmployeeID    = "employee_id"
	FieldSaleDate      = "sale_date"
	FieldCategory      = "category"
	FieldAmount        = "amount"
	FieldPaymentMethod = "payment_method"
)

const (
	SummaryTableName  = "daily_sales_summaries"
	SummaryEntityName = "daily_sales_summary"

	MonthlyTableName  = "monthly_sales_report"
	MonthlyEntityName = "monthly_sales_report"

	FieldYear  = "year"
	FieldMonth = "month"
)

// Sale is immutable once recorded.
type Sale struct {
	ID            string          `db:"id"`
	EmployeeID    string          `db:"employee_id"`
	SaleDate      time.Time       `db:"sale_date"`
	Category      string          `db:"category"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	PaymentMethod string          `db:"payment_method"`
	TransactionID string          `db:"transaction_id"`
	Notes         string          `db:"notes"`
	model.Metadata
}

type DailySalesSummary struct {
	ID               string          `db:"id"`
	EmployeeID       string          `db:"employee_id"`
	SaleDate         time.Time       `db:"sale_date"`
	TotalSales       decimal.Decimal `db:"total_sales"`
	RoomSales        decimal.Decimal `db:"room_sales"`
	FoodSales        decimal.Decimal `db:"food_sales"`
	BeverageSales    decimal.Decimal `db:"beverage_sales"`
	ServiceSales     decimal.Decimal `db:"service_sales"`
	TransactionCount int             `db:"transaction_count"`
	model.Metadata
}

// MonthlySalesReport is a row of the monthly_sales_report view.
type MonthlySalesReport struct {
	EmployeeID       string          `db:"employee_id"`
	EmployeeName     string          `db:"employee_name"`
	Year             int             `db:"year"`
	Month            int             `db:"month"`
	TotalSales       decimal.Decimal `db:"total_sales"`
	RoomSales        decimal.Decimal `db:"room_sales"`
	FoodSales        decimal.Decimal `db:"food_sales"`
	BeverageSales    decimal.Decimal `db:"beverage_sales"`
	ServiceSales     decimal.Decimal `db:"service_sales"`
	TransactionCount int             `db:"transaction_count"`
}

// EmployeeTotal is the sum of one employee's sales over a date range.
type EmployeeTotal struct {
	EmployeeID       string          `db:"employee_id"`
	EmployeeName     string          `db:"employee_name"`
	TotalSales       decimal.Decimal `db:"total_sales"`
	TransactionCount int             `db:"transaction_count"`
}

type DailyTotal struct {
	SaleDate         time.Time       `db:"sale_date"`
	TotalSales       decimal.Decimal `db:"total_sales"`
	TransactionCount int             `db:"transaction_count"`
}

type CategoryTotal struct {
	Category string          `db:"category"`
	Total    decimal.Decimal `db:"total"`
}

type PaymentMethodTotal struct {
	PaymentMethod string          `db:"payment_method"`
	Count         int             `db:"count"`
	Total         decimal.Decimal `db:"total"`
}

// Summarize rebuilds the daily summary of one employee from every sale of that day.
// Other sales count towards the total and the transaction count only.
func Summarize(employeeID string, date time.Time, sales []Sale) DailySalesSummary {
	summary := DailySalesSummary{
		EmployeeID:    employeeID,
		SaleDate:      date,
		TotalSales:    decimal.Zero,
		RoomSales:     decimal.Zero,
		FoodSales:     decimal.Zero,
		BeverageSales: decimal.Zero,
		ServiceSales:  decimal.Zero,
	}

	for _, sale := range sales {
		summary.TotalSales = summary.TotalSales.Add(sale.Amount)
		summary.TransactionCount++

		switch sale.Category {
		case constant.CategoryRoom:
			summary.RoomSales = summary.RoomSales.Add(sale.Amount)
		case constant.CategoryFood:
			summary.FoodSales = summary.FoodSales.Add(sale.Amount)
		case constant.CategoryBeverage:
			summary.BeverageSales = summary.BeverageSales.Add(sale.Amount)
		case constant.CategoryServices:
			summary.ServiceSales = summary.ServiceSales.Add(sale.Amount)
		}
	}

	return summary
}
