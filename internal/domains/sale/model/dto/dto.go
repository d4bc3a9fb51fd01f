package dto

import (
	"time"

	"hotel/internal/domains/sale/model"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecordSaleRequest struct {
	EmployeeID    string          `json:"employee_id"`
	SaleDate      string          `json:"sale_date"      validate:"required,dateonly"`
	Category      string          `json:"category"       validate:"required,oneof=Room Food Beverage Services Other"`
	Amount        decimal.Decimal `json:"amount"         validate:"positive_amount,money"`
	Description   string          `json:"description"    validate:"omitempty,max=500"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=Cash Card Mobile Check Online"`
	TransactionID string          `json:"transaction_id" validate:"omitempty,max=100"`
	Notes         string          `json:"notes"`
}

func (r *RecordSaleRequest) ToModel(employeeID, actor string, saleDate time.Time) model.Sale {
	return model.Sale{
		ID:            uuid.NewString(),
		EmployeeID:    employeeID,
		SaleDate:      saleDate,
		Category:      r.Category,
		Amount:        r.Amount,
		Description:   r.Description,
		PaymentMethod: r.PaymentMethod,
		TransactionID: r.TransactionID,
		Notes:         r.Notes,
		Metadata:      gModel.NewMetadata(actor, timezone.Now()),
	}
}

type RecordSaleResponse struct {
	SaleID string `json:"sale_id"`
}

type SaleResponse struct {
	SaleID        string          `json:"sale_id"`
	EmployeeID    string          `json:"employee_id"`
	SaleDate      string          `json:"sale_date"`
	Category      string          `json:"category"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	TransactionID string          `json:"transaction_id"`
}

func (s *SaleResponse) FromModel(model model.Sale) {
	s.SaleID = model.ID
	s.EmployeeID = model.EmployeeID
	s.SaleDate = timezone.FormatDate(model.SaleDate)
	s.Category = model.Category
	s.Description = model.Description
	s.Amount = model.Amount
	s.PaymentMethod = model.PaymentMethod
	s.TransactionID = model.TransactionID
}

func FromModels(models []model.Sale) []SaleResponse {
	res := make([]SaleResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type EmployeeTotalResponse struct {
	UserID       string          `json:"user_id"`
	EmployeeName string          `json:"employee_name"`
	TotalSales   decimal.Decimal `json:"total_sales"`
	Transactions int             `json:"transactions"`
}

func (e *EmployeeTotalResponse) FromModel(model model.EmployeeTotal) {
	e.UserID = model.EmployeeID
	e.EmployeeName = model.EmployeeName
	e.TotalSales = model.TotalSales
	e.Transactions = model.TransactionCount
}

func FromEmployeeTotals(models []model.EmployeeTotal) []EmployeeTotalResponse {
	res := make([]EmployeeTotalResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type DailySummaryResponse struct {
	SummaryID        string          `json:"summary_id"`
	EmployeeID       string          `json:"employee_id"`
	SaleDate         string          `json:"sale_date"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	RoomSales        decimal.Decimal `json:"room_sales"`
	FoodSales        decimal.Decimal `json:"food_sales"`
	BeverageSales    decimal.Decimal `json:"beverage_sales"`
	ServiceSales     decimal.Decimal `json:"service_sales"`
	TransactionCount int             `json:"transaction_count"`
}

func (d *DailySummaryResponse) FromModel(model model.DailySalesSummary) {
	d.SummaryID = model.ID
	d.EmployeeID = model.EmployeeID
	d.SaleDate = timezone.FormatDate(model.SaleDate)
	d.TotalSales = model.TotalSales
	d.RoomSales = model.RoomSales
	d.FoodSales = model.FoodSales
	d.BeverageSales = model.BeverageSales
	d.ServiceSales = model.ServiceSales
	d.TransactionCount = model.TransactionCount
}

func FromSummaries(models []model.DailySalesSummary) []DailySummaryResponse {
	res := make([]DailySummaryResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

// SaleRecordedEvent is published after a sale and its summary commit.
type SaleRecordedEvent struct {
	SaleID     string          `json:"sale_id"`
	EmployeeID string          `json:"employee_id"`
	SaleDate   string          `json:"sale_date"`
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	DayTotal   decimal.Decimal `json:"day_total"`
}
