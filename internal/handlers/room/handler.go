package room

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, mw middleware.AuthRole) {
	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Use(mw.Auth)

		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/available", handler.GetAvailableRooms)
		routerGroup.Get("/active-check-ins", handler.GetActiveCheckIns)
		routerGroup.Get("/{id}", handler.GetRoom)
		routerGroup.Post("/{id}/check-in", handler.CheckIn)
		routerGroup.Post("/{id}/check-out", handler.CheckOut)

		routerGroup.With(mw.RequireRole(constant.RoleAdmin)).Post("/", handler.CreateRoom)

		routerGroup.Group(func(managers chi.Router) {
			managers.Use(mw.RequireRole(constant.RoleManager, constant.RoleAdmin))

			managers.Put("/{id}/status", handler.UpdateStatus)
			managers.Get("/occupancy-report", handler.GetOccupancyReport)
		})
	})
}

// @Summary Create a new room
// @Description Create a room. Admin only.
// @Tags Room
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room details"
// @Success 201 {object} response.Data[dto.CreateRoomResponse] "Room created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms [post]
// @Security BearerAuth
func (handler *Handler) CreateRoom(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRoom")
	defer scope.End()

	req := dto.CreateRoomRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create room")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Room created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// @Summary Get all rooms
// @Description Retrieve every room.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /api/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	rooms, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// @Summary Get available rooms
// @Description Retrieve rooms ready for check-in.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.RoomResponse] "List of rooms"
// @Failure 500 {object} response.Error
// @Router /api/rooms/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableRooms")
	defer scope.End()

	rooms, err := handler.service.ListAvailable(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available rooms")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, rooms)
}

// @Summary Get a room by ID
// @Description Retrieve a room by its unique identifier.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} response.Data[dto.RoomResponse] "Room details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRoom")
	defer scope.End()

	room, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, room)
}

// @Summary Update room status
// @Description Move a room between Available and Maintenance.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateStatusRequest true "New status"
// @Success 200 {object} response.Message "Room status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id}/status [put]
// @Security BearerAuth
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetStatus(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room status updated successfully")

	response.WithMessage(w, http.StatusOK, "Room status updated successfully")
}

// @Summary Check a guest in
// @Description Check a guest into an available room.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.CheckInRequest true "Guest and stay details"
// @Success 201 {object} response.Data[dto.CheckInResponse] "Guest checked in"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id}/check-in [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked in successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Check a guest out
// @Description Close the active stay of an occupied room.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.CheckOutRequest false "Check-out notes"
// @Success 200 {object} response.Message "Guest checked out successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/{id}/check-out [post]
// @Security BearerAuth
func (handler *Handler) CheckOut(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckOut")
	defer scope.End()

	req := dto.CheckOutRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CheckOut(ctx, chi.URLParam(r, constant.RequestParamID), req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check out guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest checked out successfully")

	response.WithMessage(w, http.StatusOK, "Guest checked out successfully")
}

// @Summary Get active check-ins
// @Description Retrieve the stays that are still open.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]dto.ActiveCheckInResponse] "Active check-ins"
// @Failure 500 {object} response.Error
// @Router /api/rooms/active-check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetActiveCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveCheckIns")
	defer scope.End()

	checkIns, err := handler.service.ListActiveCheckIns(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active check-ins")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, checkIns)
}

// @Summary Get occupancy report
// @Description Recount room statuses and return the occupancy of today.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.OccupancyReportResponse] "Occupancy report"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/rooms/occupancy-report [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancyReport")
	defer scope.End()

	report, err := handler.service.OccupancyReport(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}
