package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	pgMocks "hotel/infras/postgres/mocks"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo      *roomMocks.MockRoom
	checkIns  *roomMocks.MockCheckIn
	occupancy *roomMocks.MockOccupancy
	tx        *pgMocks.MockTransactor
	events    *kafkaMocks.MockClient
	svc       service.Room
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      roomMocks.NewMockRoom(ctrl),
		checkIns:  roomMocks.NewMockCheckIn(ctrl),
		occupancy: roomMocks.NewMockOccupancy(ctrl),
		tx:        pgMocks.NewMockTransactor(ctrl),
		events:    kafkaMocks.NewMockClient(ctrl),
	}

	f.svc = service.New(f.repo, f.checkIns, f.occupancy, f.tx, f.events, mocks.NewOtel())

	return f
}

func (f *fixture) expectTransaction() {
	f.tx.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(pgMocks.RunTransaction)
}

func employeeCtx() context.Context {
	return shared.WithIdentity(context.Background(), shared.Identity{UserID: "emp-1", Username: "waiter1", Role: constant.RoleEmployee})
}

func room101(status string) model.Room {
	return model.Room{
		ID:            "room-101",
		RoomNumber:    "101",
		RoomType:      "Single",
		Capacity:      1,
		PricePerNight: decimal.NewFromInt(50),
		Status:        status,
	}
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{RoomNumber: "101", RoomType: "Single", Capacity: 1, PricePerNight: decimal.NewFromInt(50)}

	tests := []struct {
		name     string
		req      dto.CreateRoomRequest
		setup    func(f *fixture)
		wantCode int
		wantMsg  string
	}{
		{
			name: "new room starts available",
			req:  req,
			setup: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) error {
					assert.Equal(t, constant.RoomStatusAvailable, room.Status)
					assert.Equal(t, "101", room.RoomNumber)
					assert.NotEmpty(t, room.ID)

					return nil
				})
			},
		},
		{
			name: "duplicate room number",
			req:  req,
			setup: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "room number already exists",
		},
		{
			name: "unique violation on insert",
			req:  req,
			setup: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "room number already exists",
		},
		{
			name:     "negative price",
			req:      dto.CreateRoomRequest{RoomNumber: "102", RoomType: "Single", Capacity: 1, PricePerNight: decimal.NewFromInt(-1)},
			setup:    func(_ *fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "repository error",
			req:  req,
			setup: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				if tt.wantMsg != "" {
					assert.EqualError(t, err, tt.wantMsg)
				}

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.RoomID)
		})
	}
}

func TestRoomService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err := f.svc.Get(context.Background(), "missing")

	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}

func TestRoomService_TracesReturnedErrors(t *testing.T) {
	t.Run("not found is traced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		recorder := mocks.NewRecorder()
		svc := service.New(repo, roomMocks.NewMockCheckIn(ctrl), roomMocks.NewMockOccupancy(ctrl), pgMocks.NewMockTransactor(ctrl), kafkaMocks.NewMockClient(ctrl), recorder)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		require.Error(t, err)
		require.Len(t, recorder.Errors(), 1)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(recorder.Errors()[0]))
	})

	t.Run("success traces nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := roomMocks.NewMockRoom(ctrl)
		recorder := mocks.NewRecorder()
		svc := service.New(repo, roomMocks.NewMockCheckIn(ctrl), roomMocks.NewMockOccupancy(ctrl), pgMocks.NewMockTransactor(ctrl), kafkaMocks.NewMockClient(ctrl), recorder)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)

		_, err := svc.Get(context.Background(), "room-101")

		require.NoError(t, err)
		assert.Empty(t, recorder.Errors())
	})
}

func TestRoomService_ListAvailable(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, model.FieldRoomNumber, params.SortBy)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(rooms.status = :status)", where)
			assert.Equal(t, constant.RoomStatusAvailable, args["status"])

			return []model.Room{room101(constant.RoomStatusAvailable)}, nil
		})

	res, err := f.svc.ListAvailable(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "101", res[0].RoomNumber)
}

func TestRoomService_SetStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		setup    func(f *fixture)
		wantCode int
	}{
		{
			name:   "available to maintenance",
			status: constant.RoomStatusMaintenance,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.RoomStatusMaintenance, fields[model.FieldStatus])

						return nil
					})
				f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{Total: 1, Maintenance: 1}, nil)
				f.occupancy.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "target occupied is rejected",
			status:   constant.RoomStatusOccupied,
			setup:    func(_ *fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "occupied room is rejected",
			status: constant.RoomStatusMaintenance,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusOccupied), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:   "unknown room",
			status: constant.RoomStatusMaintenance,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.SetStatus(context.Background(), "room-101", dto.UpdateStatusRequest{Status: tt.status})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRoomService_CheckIn(t *testing.T) {
	req := dto.CheckInRequest{GuestName: "Alice", CheckInDate: "2024-01-01", CheckOutDate: "2024-01-03"}

	tests := []struct {
		name     string
		req      dto.CheckInRequest
		setup    func(f *fixture)
		wantCode int
	}{
		{
			name: "guest checked in and room occupied",
			req:  req,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)
				f.checkIns.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, checkIn model.CheckIn) error {
						assert.Equal(t, "room-101", checkIn.RoomID)
						assert.Equal(t, "emp-1", checkIn.EmployeeID)
						assert.Equal(t, constant.CheckInStatusActive, checkIn.Status)
						assert.Equal(t, 1, checkIn.NumberOfGuests)
						assert.Equal(t, time.January, checkIn.CheckInDate.Month())

						return nil
					})
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.RoomStatusOccupied, fields[model.FieldStatus])

						return nil
					})
				f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{Total: 4, Occupied: 1}, nil)
				f.occupancy.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, report model.OccupancyReport) error {
						assert.Equal(t, 1, report.OccupiedRooms)
						assert.Equal(t, 3, report.AvailableRooms)
						assert.True(t, report.OccupancyRate.Equal(decimal.NewFromInt(25)))

						return nil
					})
				f.events.EXPECT().SendMessages(gomock.Any(), constant.TopicGuestCheckedIn, gomock.Any()).Return(nil)
			},
		},
		{
			name: "occupied room",
			req:  req,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusOccupied), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "more guests than capacity",
			req:  dto.CheckInRequest{GuestName: "Alice", CheckInDate: "2024-01-01", CheckOutDate: "2024-01-03", NumberOfGuests: 2},
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "check-out before check-in",
			req:      dto.CheckInRequest{GuestName: "Alice", CheckInDate: "2024-01-03", CheckOutDate: "2024-01-01"},
			setup:    func(_ *fixture) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown room",
			req:  req,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "concurrent active check-in",
			req:  req,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)
				f.checkIns.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "occupancy failure rolls back",
			req:  req,
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)
				f.checkIns.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			res, err := f.svc.CheckIn(employeeCtx(), "room-101", tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.CheckInID)
		})
	}
}

func TestRoomService_CheckOut(t *testing.T) {
	active := model.CheckIn{ID: "ci-1", RoomID: "room-101", GuestName: "Alice", Status: constant.CheckInStatusActive}

	tests := []struct {
		name     string
		setup    func(f *fixture)
		wantCode int
	}{
		{
			name: "room returns to available",
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusOccupied), nil)
				f.checkIns.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(active, nil)
				f.checkIns.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.CheckInStatusCompleted, fields[model.FieldCheckInStatus])

						return nil
					})
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, constant.RoomStatusAvailable, fields[model.FieldStatus])

						return nil
					})
				f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{Total: 4}, nil)
				f.occupancy.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *sqlx.Tx, report model.OccupancyReport) error {
						assert.Equal(t, 0, report.OccupiedRooms)

						return nil
					})
				f.events.EXPECT().SendMessages(gomock.Any(), constant.TopicGuestCheckedOut, gomock.Any()).Return(errors.New("broker down"))
			},
		},
		{
			name: "check-in of another room",
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusOccupied), nil)
				f.checkIns.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.CheckIn{ID: "ci-1", RoomID: "room-202", Status: constant.CheckInStatusActive}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "already completed",
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusAvailable), nil)
				f.checkIns.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.CheckIn{ID: "ci-1", RoomID: "room-101", Status: constant.CheckInStatusCompleted}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown check-in",
			setup: func(f *fixture) {
				f.expectTransaction()
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room101(constant.RoomStatusOccupied), nil)
				f.checkIns.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.CheckIn{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.svc.CheckOut(employeeCtx(), "room-101", dto.CheckOutRequest{CheckInID: "ci-1"})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestRoomService_ListActiveCheckIns(t *testing.T) {
	f := newFixture(t)

	f.checkIns.EXPECT().ListActive(gomock.Any()).Return([]model.ActiveCheckIn{{
		CheckIn: model.CheckIn{
			ID:           "ci-1",
			RoomID:       "room-101",
			GuestName:    "Alice",
			CheckInDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC),
			Status:       constant.CheckInStatusActive,
		},
		RoomNumber:   "101",
		EmployeeName: "Waiter One",
	}}, nil)

	res, err := f.svc.ListActiveCheckIns(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "2024-01-01", res[0].CheckInDate)
	assert.Equal(t, "2024-01-03", res[0].CheckOutDate)
	assert.Equal(t, "Waiter One", res[0].EmployeeName)
}

func TestRoomService_OccupancyReport(t *testing.T) {
	t.Run("zero rooms has zero rate", func(t *testing.T) {
		f := newFixture(t)

		f.expectTransaction()
		f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{}, nil)
		f.occupancy.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.occupancy.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(model.OccupancyReport{}, nil)

		res, err := f.svc.OccupancyReport(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, res.TotalRooms)
		assert.True(t, res.OccupancyRate.IsZero())
	})

	t.Run("recount happens under the per-day lock", func(t *testing.T) {
		f := newFixture(t)

		f.expectTransaction()
		gomock.InOrder(
			f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), timezone.FormatDate(timezone.Today())).Return(nil),
			f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{Total: 2, Occupied: 2}, nil),
			f.occupancy.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
		)
		f.occupancy.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(model.OccupancyReport{TotalRooms: 2, OccupiedRooms: 2}, nil)

		res, err := f.svc.OccupancyReport(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, res.OccupiedRooms)
	})

	t.Run("lock failure skips the recount", func(t *testing.T) {
		f := newFixture(t)

		f.expectTransaction()
		f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("lock timeout"))

		_, err := f.svc.OccupancyReport(context.Background())

		require.Error(t, err)
	})

	t.Run("stored row is returned", func(t *testing.T) {
		f := newFixture(t)

		stored := model.OccupancyReport{ID: "occ-1", TotalRooms: 6, OccupiedRooms: 3, AvailableRooms: 3, OccupancyRate: decimal.NewFromInt(50)}

		f.expectTransaction()
		f.occupancy.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().CountByStatus(gomock.Any(), gomock.Any()).Return(model.StatusCounts{Total: 6, Occupied: 3}, nil)
		f.occupancy.EXPECT().UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.occupancy.EXPECT().GetByDate(gomock.Any(), gomock.Any()).Return(stored, nil)

		res, err := f.svc.OccupancyReport(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, res.OccupiedRooms)
		assert.True(t, res.OccupancyRate.Equal(decimal.NewFromInt(50)))
	})
}
