package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Room=MockRoomService

import (
	"context"
	"fmt"

	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
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
	errRoomNumberExists   = "room number already exists"
	errRoomNotFound       = "room not found"
	errCheckInNotFound    = "check-in not found"
	errRoomNotAvailable   = "room is not available"
	errCheckInCompleted   = "check-in is already completed"
	errNegativePrice      = "price_per_night must not be negative"
	errInvalidStayDates   = "check_out_date must not be before check_in_date"
	errTooManyGuests      = "number_of_guests exceeds room capacity of %d"
	errRoomOccupied       = "status of an occupied room changes only through check-out"
	errOccupiedViaCheckIn = "rooms become occupied only through check-in"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.CreateRoomResponse, error)
	List(ctx context.Context) ([]dto.RoomResponse, error)
	ListAvailable(ctx context.Context) ([]dto.RoomResponse, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	SetStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) error
	CheckIn(ctx context.Context, roomID string, req dto.CheckInRequest) (dto.CheckInResponse, error)
	CheckOut(ctx context.Context, roomID string, req dto.CheckOutRequest) error
	ListActiveCheckIns(ctx context.Context) ([]dto.ActiveCheckInResponse, error)
	OccupancyReport(ctx context.Context) (dto.OccupancyReportResponse, error)
}

type serviceImpl struct {
	repo      repository.Room
	checkIns  repository.CheckIn
	occupancy repository.Occupancy
	tx        postgres.Transactor
	events    kafka.Client
	otel      otel.Otel
}

func New(
	repo repository.Room,
	checkIns repository.CheckIn,
	occupancy repository.Occupancy,
	tx postgres.Transactor,
	events kafka.Client,
	otel otel.Otel,
) Room {
	return &serviceImpl{
		repo:      repo,
		checkIns:  checkIns,
		occupancy: occupancy,
		tx:        tx,
		events:    events,
		otel:      otel,
	}
}

func byRoomNumber(roomNumber string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    model.FieldRoomNumber,
		Operator: gDto.FilterOperatorEq,
		Value:    roomNumber,
		Table:    model.TableName,
	})
}

func byStatus(status string) gDto.FilterGroup {
	return gDto.And(gDto.Filter{
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    status,
		Table:    model.TableName,
	})
}

func orderedByRoomNumber() gDto.QueryParams {
	return gDto.QueryParams{SortBy: model.FieldRoomNumber, SortDir: gDto.SortDirAsc}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.CreateRoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.PricePerNight.IsNegative() {
		return res, failure.BadRequestFromString(errNegativePrice)
	}

	exists, err := s.repo.Exist(ctx, byRoomNumber(req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if exists {
		return res, failure.Duplicate(errRoomNumberExists)
	}

	room := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		if postgres.IsUniqueViolation(err) {
			return res, failure.Duplicate(errRoomNumberExists)
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	log.Info().Str("room_id", room.ID).Str("room_number", room.RoomNumber).Msg("room created")

	res.RoomID = room.ID

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.GetAll(ctx, orderedByRoomNumber(), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list rooms")

		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) ListAvailable(ctx context.Context) (res []dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.repo.GetAll(ctx, orderedByRoomNumber(), byStatus(constant.RoomStatusAvailable))
	if err != nil {
		log.Error().Err(err).Msg("failed to list available rooms")

		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}

	return dto.FromModels(rooms), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == "" {
		return res, failure.NotFound(errRoomNotFound)
	}

	res.FromModel(room)

	return res, nil
}

// SetStatus moves a room between Available and Maintenance. Occupied is owned by check-in and check-out.
func (s *serviceImpl) SetStatus(ctx context.Context, id string, req dto.UpdateStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.Status == constant.RoomStatusOccupied {
		return failure.BadRequestFromString(errOccupiedViaCheckIn)
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == "" {
			return failure.NotFound(errRoomNotFound)
		}

		if room.Status == constant.RoomStatusOccupied {
			return failure.BadRequestFromString(errRoomOccupied)
		}

		if room.Status == req.Status {
			return nil
		}

		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
			return fmt.Errorf("failed to update room status: %w", err)
		}

		_, err = s.refreshOccupancy(ctx, tx)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", id).Msg("failed to set room status")

		return err //nolint:wrapcheck
	}

	log.Info().Str("room_id", id).Str("status", req.Status).Msg("room status changed")

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, roomID string, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkInDate, err := timezone.ParseDate(req.CheckInDate)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	checkOutDate, err := timezone.ParseDate(req.CheckOutDate)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if checkOutDate.Before(checkInDate) {
		return res, failure.BadRequestFromString(errInvalidStayDates)
	}

	var (
		room    model.Room
		checkIn model.CheckIn
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(roomID, model.FieldID, model.TableName)

		room, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == "" {
			return failure.NotFound(errRoomNotFound)
		}

		if room.Status != constant.RoomStatusAvailable {
			return failure.BadRequestFromString(errRoomNotAvailable)
		}

		if req.Guests() > room.Capacity {
			return failure.BadRequestFromString(fmt.Sprintf(errTooManyGuests, room.Capacity))
		}

		checkIn = req.ToModel(room.ID, shared.Actor(ctx), checkInDate, checkOutDate)

		if err := s.checkIns.InsertTx(ctx, tx, checkIn); err != nil {
			if postgres.IsUniqueViolation(err) {
				return failure.BadRequestFromString(errRoomNotAvailable)
			}

			return fmt.Errorf("failed to insert check-in: %w", err)
		}

		occupied := dto.UpdateStatusRequest{Status: constant.RoomStatusOccupied}
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(occupied, shared.Actor(ctx)), filter); err != nil {
			return fmt.Errorf("failed to mark room occupied: %w", err)
		}

		_, err := s.refreshOccupancy(ctx, tx)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to check in guest")

		return res, err //nolint:wrapcheck
	}

	log.Info().Str("room_id", roomID).Str("check_in_id", checkIn.ID).Msg("guest checked in")

	s.publish(ctx, constant.TopicGuestCheckedIn, room, checkIn)

	res.CheckInID = checkIn.ID

	return res, nil
}

// CheckOut completes an active stay of the given room and frees the room.
func (s *serviceImpl) CheckOut(ctx context.Context, roomID string, req dto.CheckOutRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var (
		room    model.Room
		checkIn model.CheckIn
	)

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		roomFilter := shared.FilterByID(roomID, model.FieldID, model.TableName)

		room, err = s.repo.GetForUpdateTx(ctx, tx, roomFilter)
		if err != nil {
			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == "" {
			return failure.NotFound(errRoomNotFound)
		}

		checkInFilter := shared.FilterByID(req.CheckInID, model.FieldCheckInID, model.CheckInTableName)

		checkIn, err = s.checkIns.GetForUpdateTx(ctx, tx, checkInFilter)
		if err != nil {
			return fmt.Errorf("failed to lock check-in: %w", err)
		}

		if checkIn.ID == "" || checkIn.RoomID != room.ID {
			return failure.NotFound(errCheckInNotFound)
		}

		if checkIn.Status != constant.CheckInStatusActive {
			return failure.BadRequestFromString(errCheckInCompleted)
		}

		completed := dto.CheckInStatusUpdate{Status: constant.CheckInStatusCompleted}
		if err := s.checkIns.UpdateTx(ctx, tx, shared.TransformFields(completed, shared.Actor(ctx)), checkInFilter); err != nil {
			return fmt.Errorf("failed to complete check-in: %w", err)
		}

		available := dto.UpdateStatusRequest{Status: constant.RoomStatusAvailable}
		if err := s.repo.UpdateTx(ctx, tx, shared.TransformFields(available, shared.Actor(ctx)), roomFilter); err != nil {
			return fmt.Errorf("failed to mark room available: %w", err)
		}

		_, err := s.refreshOccupancy(ctx, tx)

		return err
	})
	if err != nil {
		log.Error().Err(err).Str("room_id", roomID).Msg("failed to check out guest")

		return err //nolint:wrapcheck
	}

	log.Info().Str("room_id", roomID).Str("check_in_id", checkIn.ID).Msg("guest checked out")

	s.publish(ctx, constant.TopicGuestCheckedOut, room, checkIn)

	return nil
}

func (s *serviceImpl) ListActiveCheckIns(ctx context.Context) (res []dto.ActiveCheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListActiveCheckIns")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIns, err := s.checkIns.ListActive(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active check-ins")

		return nil, fmt.Errorf("failed to list active check-ins: %w", err)
	}

	return dto.FromActiveCheckIns(checkIns), nil
}

// OccupancyReport regenerates today's snapshot and returns the stored row.
func (s *serviceImpl) OccupancyReport(ctx context.Context) (res dto.OccupancyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OccupancyReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var generated model.OccupancyReport

	err = s.tx.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		generated, err = s.refreshOccupancy(ctx, tx)

		return err
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to generate occupancy report")

		return res, err //nolint:wrapcheck
	}

	report, err := s.occupancy.GetByDate(ctx, generated.ReportDate)
	if err != nil {
		log.Error().Err(err).Msg("failed to get occupancy report")

		return res, fmt.Errorf("failed to get occupancy report: %w", err)
	}

	if report.ID == "" {
		report = generated
	}

	res.FromModel(report)

	return res, nil
}

// refreshOccupancy recounts under a per-day lock so concurrent stays on different rooms are all counted.
func (s *serviceImpl) refreshOccupancy(ctx context.Context, tx *sqlx.Tx) (model.OccupancyReport, error) {
	today := timezone.Today()

	if err := s.occupancy.LockTx(ctx, tx, timezone.FormatDate(today)); err != nil {
		return model.OccupancyReport{}, fmt.Errorf("failed to lock occupancy report: %w", err)
	}

	counts, err := s.repo.CountByStatus(ctx, tx)
	if err != nil {
		return model.OccupancyReport{}, fmt.Errorf("failed to count rooms: %w", err)
	}

	report := model.NewOccupancyReport(counts, today)
	report.ID = uuid.NewString()
	report.Metadata = gModel.NewMetadata(shared.Actor(ctx), timezone.Now())

	if err = s.occupancy.UpsertTx(ctx, tx, report); err != nil {
		return report, fmt.Errorf("failed to upsert occupancy report: %w", err)
	}

	return report, nil
}

// publish is best effort, the stay is already committed.
func (s *serviceImpl) publish(ctx context.Context, topic string, room model.Room, checkIn model.CheckIn) {
	event := dto.GuestEvent{
		CheckInID:  checkIn.ID,
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		GuestName:  checkIn.GuestName,
		EmployeeID: checkIn.EmployeeID,
		OccurredAt: timezone.Format(timezone.Now(), constant.DateTimeFormat),
	}

	err := s.events.SendMessages(ctx, topic, kafka.Message{Key: room.ID, Value: event})
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish guest event")
	}
}
