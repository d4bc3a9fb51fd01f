package user

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the employee directory. Reading a single employee is open to the employee themself.
func (handler *Handler) Router(router chi.Router, mw middleware.AuthRole) {
	router.Route("/employees", func(routerGroup chi.Router) {
		routerGroup.Use(mw.Auth)

		routerGroup.Get("/{id}", handler.GetEmployee)

		routerGroup.Group(func(managers chi.Router) {
			managers.Use(mw.RequireRole(constant.RoleManager, constant.RoleAdmin))

			managers.Get("/", handler.GetEmployees)
			managers.Get("/by-department/{department}", handler.GetEmployeesByDepartment)
			managers.Put("/{id}", handler.UpdateEmployee)
		})

		routerGroup.Group(func(admins chi.Router) {
			admins.Use(mw.RequireRole(constant.RoleAdmin))

			admins.Post("/", handler.CreateEmployee)
			admins.Put("/{id}/deactivate", handler.DeactivateEmployee)
		})
	})
}

// @Summary Create an employee
// @Description Create an employee account. Admin only.
// @Tags Employee
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Employee details"
// @Success 201 {object} response.Data[dto.UserResponse] "Employee created"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees [post]
// @Security BearerAuth
func (handler *Handler) CreateEmployee(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEmployee")
	defer scope.End()

	req := dto.CreateUserRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create employee")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Employee created successfully")

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetEmployees lists active employees, optionally of a single role.
// @Summary List employees
// @Description List active employees, optionally of a single role.
// @Tags Employee
// @Accept json
// @Produce json
// @Param role query string false "Filter by role"
// @Success 200 {object} response.Data[[]dto.UserResponse] "Employees"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees [get]
// @Security BearerAuth
func (handler *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployees")
	defer scope.End()

	employees, err := handler.service.List(ctx, r.URL.Query().Get(constant.RequestParamRole))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// @Summary List employees of a department
// @Description List active employees working in a department.
// @Tags Employee
// @Accept json
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} response.Data[[]dto.UserResponse] "Employees"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees/by-department/{department} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeesByDepartment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeesByDepartment")
	defer scope.End()

	employees, err := handler.service.ListByDepartment(ctx, chi.URLParam(r, constant.RequestParamDepartment))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employees by department")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employees)
}

// @Summary Get an employee by ID
// @Description Retrieve an employee. Employees may only read themselves.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Data[dto.UserResponse] "Employee"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployee")
	defer scope.End()

	employee, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, employee)
}

// @Summary Update an employee
// @Description Update the profile fields of an employee.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} response.Data[dto.UserResponse] "Employee updated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEmployee")
	defer scope.End()

	req := dto.UpdateUserRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	employee, err := handler.service.Update(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee updated successfully")

	response.WithJSON(w, http.StatusOK, employee)
}

// @Summary Deactivate an employee
// @Description Mark an employee inactive. Admin only.
// @Tags Employee
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee deactivated successfully"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/employees/{id}/deactivate [put]
// @Security BearerAuth
func (handler *Handler) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateEmployee")
	defer scope.End()

	if err := handler.service.Deactivate(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate employee")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Employee deactivated successfully")

	response.WithMessage(w, http.StatusOK, "Employee deactivated successfully")
}
