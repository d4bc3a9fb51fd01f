package sale

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/sale/model/dto"
	"hotel/internal/domains/sale/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sale
	otel    otel.Otel
}

func New(service service.Sale, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, mw middleware.AuthRole) {
	router.Route("/sales", func(routerGroup chi.Router) {
		routerGroup.Use(mw.Auth)

		routerGroup.Post("/record", handler.RecordSale)
		routerGroup.Get("/daily/{employee_id}/{date}", handler.GetDailySales)
		routerGroup.Get("/daily-summary/{date}", handler.GetDailySummary)
		routerGroup.Get("/employee-performance/{employee_id}", handler.GetEmployeePerformance)
		routerGroup.Get("/categories", handler.GetCategories)
		routerGroup.Get("/payment-methods", handler.GetPaymentMethods)

		routerGroup.With(mw.RequireRole(constant.RoleManager, constant.RoleAdmin)).
			Get("/monthly/{year}/{month}", handler.GetMonthlySales)
	})
}

// RecordSale stores a sale. Managers and Admins record on behalf of employee_id.
// @Summary Record a sale
// @Description Store a sale and rebuild the daily summary of its employee.
// @Tags Sale
// @Accept json
// @Produce json
// @Param request body dto.RecordSaleRequest true "Sale details"
// @Success 201 {object} response.Data[dto.RecordSaleResponse] "Sale recorded"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/sales/record [post]
// @Security BearerAuth
func (handler *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordSale")
	defer scope.End()

	req := dto.RecordSaleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Record(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record sale")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Sale recorded successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// @Summary Get daily sales of an employee
// @Description Retrieve the sales an employee recorded on a date.
// @Tags Sale
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.SaleResponse] "Sales"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/sales/daily/{employee_id}/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetDailySales(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailySales")
	defer scope.End()

	sales, err := handler.service.DailyForEmployee(ctx, chi.URLParam(r, constant.RequestParamEmpID), chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily sales")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sales)
}

// @Summary Get monthly sales
// @Description Retrieve the sales of a month, optionally of one employee.
// @Tags Sale
// @Accept json
// @Produce json
// @Param year path integer true "Year"
// @Param month path integer true "Month"
// @Param employee_id query string false "Filter by employee"
// @Success 200 {object} response.Data[[]dto.SaleResponse] "Sales"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/sales/monthly/{year}/{month} [get]
// @Security BearerAuth
func (handler *Handler) GetMonthlySales(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlySales")
	defer scope.End()

	year, err := shared.IntParam(constant.RequestParamYear, chi.URLParam(r, constant.RequestParamYear))
	if err != nil {
		response.WithError(w, err)

		return
	}

	month, err := shared.IntParam(constant.RequestParamMonth, chi.URLParam(r, constant.RequestParamMonth))
	if err != nil {
		response.WithError(w, err)

		return
	}

	sales, err := handler.service.Monthly(ctx, year, month, r.URL.Query().Get(constant.RequestParamEmpID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly sales")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, sales)
}

// @Summary Get daily summary
// @Description Retrieve per-employee totals for a date.
// @Tags Sale
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.EmployeeTotalResponse] "Daily totals"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/sales/daily-summary/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetDailySummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailySummary")
	defer scope.End()

	summary, err := handler.service.DailySummary(ctx, chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// @Summary Get employee performance
// @Description Retrieve the stored daily summaries of an employee.
// @Tags Sale
// @Accept json
// @Produce json
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} response.Data[[]dto.DailySummaryResponse] "Daily summaries"
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/sales/employee-performance/{employee_id} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeePerformance")
	defer scope.End()

	performance, err := handler.service.EmployeePerformance(ctx, chi.URLParam(r, constant.RequestParamEmpID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee performance")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, performance)
}

// @Summary Get sale categories
// @Description List the accepted sale categories.
// @Tags Sale
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]string] "Categories"
// @Router /api/sales/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.Categories())
}

// @Summary Get payment methods
// @Description List the accepted payment methods.
// @Tags Sale
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[[]string] "Payment methods"
// @Router /api/sales/payment-methods [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentMethods(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.PaymentMethods())
}
