package dto

import (
	"time"

	"hotel/internal/domains/room/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
	"hotel/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateRoomRequest struct {
	RoomNumber    string          `json:"room_number"     validate:"required,max=20"`
	RoomType      string          `json:"room_type"       validate:"required,max=50"`
	Capacity      int             `json:"capacity"        validate:"required,min=1"`
	PricePerNight decimal.Decimal `json:"price_per_night" validate:"money"`
}

func (c *CreateRoomRequest) ToModel(actor string) model.Room {
	return model.Room{
		ID:            uuid.NewString(),
		RoomNumber:    c.RoomNumber,
		RoomType:      c.RoomType,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Status:        constant.RoomStatusAvailable,
		Metadata:      gModel.NewMetadata(actor, timezone.Now()),
	}
}

type UpdateStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=Available Occupied Maintenance"`
}

type CheckInRequest struct {
	GuestName      string `json:"guest_name"       validate:"required,max=150"`
	GuestEmail     string `json:"guest_email"      validate:"omitempty,email,max=120"`
	GuestPhone     string `json:"guest_phone"      validate:"omitempty,max=30"`
	CheckInDate    string `json:"check_in_date"    validate:"required,dateonly"`
	CheckOutDate   string `json:"check_out_date"   validate:"required,dateonly"`
	NumberOfGuests int    `json:"number_of_guests" validate:"omitempty,min=1"`
	Notes          string `json:"notes"`
}

// Guests defaults an omitted guest count to one.
func (c *CheckInRequest) Guests() int {
	if c.NumberOfGuests == 0 {
		return 1
	}

	return c.NumberOfGuests
}

func (c *CheckInRequest) ToModel(roomID, employeeID string, checkInDate, checkOutDate time.Time) model.CheckIn {
	return model.CheckIn{
		ID:             uuid.NewString(),
		RoomID:         roomID,
		GuestName:      c.GuestName,
		GuestEmail:     c.GuestEmail,
		GuestPhone:     c.GuestPhone,
		CheckInDate:    checkInDate,
		CheckOutDate:   checkOutDate,
		NumberOfGuests: c.Guests(),
		EmployeeID:     employeeID,
		Status:         constant.CheckInStatusActive,
		Notes:          c.Notes,
		Metadata:       gModel.NewMetadata(employeeID, timezone.Now()),
	}
}

type CheckOutRequest struct {
	CheckInID string `json:"check_in_id" validate:"required"`
}

type CheckInStatusUpdate struct {
	Status string `db:"status"`
}

type RoomResponse struct {
	ID            string          `json:"id"`
	RoomNumber    string          `json:"room_number"`
	RoomType      string          `json:"room_type"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	Status        string          `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomNumber = model.RoomNumber
	r.RoomType = model.RoomType
	r.Capacity = model.Capacity
	r.PricePerNight = model.PricePerNight
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Room) []RoomResponse {
	res := make([]RoomResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type CreateRoomResponse struct {
	RoomID string `json:"room_id"`
}

type CheckInResponse struct {
	CheckInID string `json:"check_in_id"`
}

type ActiveCheckInResponse struct {
	ID             string `json:"id"`
	RoomID         string `json:"room_id"`
	RoomNumber     string `json:"room_number"`
	RoomType       string `json:"room_type"`
	GuestName      string `json:"guest_name"`
	GuestEmail     string `json:"guest_email"`
	GuestPhone     string `json:"guest_phone"`
	CheckInDate    string `json:"check_in_date"`
	CheckOutDate   string `json:"check_out_date"`
	NumberOfGuests int    `json:"number_of_guests"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	Status         string `json:"status"`
	Notes          string `json:"notes"`
}

func (a *ActiveCheckInResponse) FromModel(model model.ActiveCheckIn) {
	a.ID = model.ID
	a.RoomID = model.RoomID
	a.RoomNumber = model.RoomNumber
	a.RoomType = model.RoomType
	a.GuestName = model.GuestName
	a.GuestEmail = model.GuestEmail
	a.GuestPhone = model.GuestPhone
	a.CheckInDate = timezone.FormatDate(model.CheckInDate)
	a.CheckOutDate = timezone.FormatDate(model.CheckOutDate)
	a.NumberOfGuests = model.NumberOfGuests
	a.EmployeeID = model.EmployeeID
	a.EmployeeName = model.EmployeeName
	a.Status = model.Status
	a.Notes = model.Notes
}

func FromActiveCheckIns(models []model.ActiveCheckIn) []ActiveCheckInResponse {
	res := make([]ActiveCheckInResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type OccupancyReportResponse struct {
	ReportDate       string          `json:"report_date"`
	TotalRooms       int             `json:"total_rooms"`
	OccupiedRooms    int             `json:"occupied_rooms"`
	AvailableRooms   int             `json:"available_rooms"`
	MaintenanceRooms int             `json:"maintenance_rooms"`
	OccupancyRate    decimal.Decimal `json:"occupancy_rate"`
}

func (o *OccupancyReportResponse) FromModel(model model.OccupancyReport) {
	o.ReportDate = timezone.FormatDate(model.ReportDate)
	o.TotalRooms = model.TotalRooms
	o.OccupiedRooms = model.OccupiedRooms
	o.AvailableRooms = model.AvailableRooms
	o.MaintenanceRooms = model.MaintenanceRooms
	o.OccupancyRate = model.OccupancyRate
}

// GuestEvent is published after a check-in or check-out commits.
type GuestEvent struct {
	CheckInID  string `json:"check_in_id"`
	RoomID     string `json:"room_id"`
	RoomNumber string `json:"room_number"`
	GuestName  string `json:"guest_name"`
	EmployeeID string `json:"employee_id"`
	OccurredAt string `json:"occurred_at"`
}
