package model

import (
	"time"

	"hotel/shared/constant"
	"hotel/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldRoomNumber    = "room_number"
	FieldRoomType      = "room_type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
)

const (
	CheckInTableName  = "check_ins"
	CheckInEntityName = "check_in"

	FieldCheckInID       = "id"
	FieldRoomID          = "room_id"
	FieldCheckInDate     = "check_in_date"
	FieldCheckOutDate    = "check_out_date"
	FieldCheckInStatus   = "status"
	FieldCheckInEmployee = "employee_id"
)

const (
	OccupancyTableName  = "occupancy_reports"
	OccupancyEntityName = "occupancy_report"

	FieldReportDate = "report_date"
)

type Room struct {
	ID            string          `db:"id"`
	RoomNumber    string          `db:"room_number"`
	RoomType      string          `db:"room_type"`
	Capacity      int             `db:"capacity"`
	PricePerNight decimal.Decimal `db:"price_per_night"`
	Status        string          `db:"status"`
	model.Metadata
}

type CheckIn struct {
	ID             string    `db:"id"`
	RoomID         string    `db:"room_id"`
	GuestName      string    `db:"guest_name"`
	GuestEmail     string    `db:"guest_email"`
	GuestPhone     string    `db:"guest_phone"`
	CheckInDate    time.Time `db:"check_in_date"`
	CheckOutDate   time.Time `db:"check_out_date"`
	NumberOfGuests int       `db:"number_of_guests"`
	EmployeeID     string    `db:"employee_id"`
	Status         string    `db:"status"`
	Notes          string    `db:"notes"`
	model.Metadata
}

// ActiveCheckIn is a check-in joined with its room and the employee who registered it.
type ActiveCheckIn struct {
	CheckIn
	RoomNumber   string `db:"room_number"   table:"rooms"`
	RoomType     string `db:"room_type"     table:"rooms"`
	EmployeeName string `db:"employee_name" table:"users" column:"full_name"`
}

func (ActiveCheckIn) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = check_ins.room_id JOIN users ON users.id = check_ins.employee_id"
}

type OccupancyReport struct {
	ID               string          `db:"id"`
	ReportDate       time.Time       `db:"report_date"`
	TotalRooms       int             `db:"total_rooms"`
	OccupiedRooms    int             `db:"occupied_rooms"`
	AvailableRooms   int             `db:"available_rooms"`
	MaintenanceRooms int             `db:"maintenance_rooms"`
	OccupancyRate    decimal.Decimal `db:"occupancy_rate"`
	model.Metadata
}

// StatusCounts is the number of rooms per status.
type StatusCounts struct {
	Total       int `db:"total"`
	Occupied    int `db:"occupied"`
	Maintenance int `db:"maintenance"`
}

// NewOccupancyReport derives the occupancy snapshot for date from counts. An empty hotel has a rate of 0.
func NewOccupancyReport(counts StatusCounts, date time.Time) OccupancyReport {
	rate := decimal.Zero

	if counts.Total > 0 {
		rate = decimal.NewFromInt(int64(counts.Occupied)).
			Mul(decimal.NewFromInt(constant.PercentageMultiplier)).
			Div(decimal.NewFromInt(int64(counts.Total))).
			Round(constant.DecimalPlacesCurrency)
	}

	return OccupancyReport{
		ReportDate:       date,
		TotalRooms:       counts.Total,
		OccupiedRooms:    counts.Occupied,
		AvailableRooms:   counts.Total - counts.Occupied - counts.Maintenance,
		MaintenanceRooms: counts.Maintenance,
		OccupancyRate:    rate,
	}
}
