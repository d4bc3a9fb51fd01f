package report

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/report/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, mw middleware.AuthRole) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Use(mw.Auth)

		routerGroup.Get("/employee-performance/{id}/{period}", handler.GetEmployeePerformance)

		routerGroup.Group(func(managers chi.Router) {
			managers.Use(mw.RequireRole(constant.RoleManager, constant.RoleAdmin))

			managers.Get("/daily/{date}", handler.GetDaily)
			managers.Get("/monthly/{year}/{month}", handler.GetMonthly)
			managers.Get("/yearly/{year}", handler.GetYearly)
			managers.Get("/export/daily/{date}", handler.ExportDaily)
			managers.Get("/export/monthly/{year}/{month}", handler.ExportMonthly)
		})
	})
}

func yearMonth(r *http.Request) (int, int, error) {
	year, err := shared.IntParam(constant.RequestParamYear, chi.URLParam(r, constant.RequestParamYear))
	if err != nil {
		return 0, 0, err
	}

	month, err := shared.IntParam(constant.RequestParamMonth, chi.URLParam(r, constant.RequestParamMonth))
	if err != nil {
		return 0, 0, err
	}

	return year, month, nil
}

// @Summary Get daily report
// @Description Summarize all sales of a date.
// @Tags Report
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.DailyReport] "Daily report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reports/daily/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyReport")
	defer scope.End()

	report, err := handler.service.Daily(ctx, chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// @Summary Get monthly report
// @Description Summarize a month per employee.
// @Tags Report
// @Accept json
// @Produce json
// @Param year path integer true "Year"
// @Param month path integer true "Month"
// @Success 200 {object} response.Data[dto.MonthlyReport] "Monthly report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reports/monthly/{year}/{month} [get]
// @Security BearerAuth
func (handler *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonthlyReport")
	defer scope.End()

	year, month, err := yearMonth(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	report, err := handler.service.Monthly(ctx, year, month)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monthly report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// @Summary Get yearly report
// @Description Summarize a year per month.
// @Tags Report
// @Accept json
// @Produce json
// @Param year path integer true "Year"
// @Success 200 {object} response.Data[dto.YearlyReport] "Yearly report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reports/yearly/{year} [get]
// @Security BearerAuth
func (handler *Handler) GetYearly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetYearlyReport")
	defer scope.End()

	year, err := shared.IntParam(constant.RequestParamYear, chi.URLParam(r, constant.RequestParamYear))
	if err != nil {
		response.WithError(w, err)

		return
	}

	report, err := handler.service.Yearly(ctx, year)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get yearly report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// @Summary Get employee performance report
// @Description Summarize an employee over a period.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param period path string true "Period" Enums(week, month, year)
// @Success 200 {object} response.Data[dto.PerformanceReport] "Performance report"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reports/employee-performance/{id}/{period} [get]
// @Security BearerAuth
func (handler *Handler) GetEmployeePerformance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEmployeePerformanceReport")
	defer scope.End()

	report, err := handler.service.EmployeePerformance(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamPeriod))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get employee performance report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// ExportDaily sends the daily report as an attachment, excel unless ?format=pdf.
// @Summary Export daily report
// @Description Download the daily report as a spreadsheet or PDF.
// @Tags Report
// @Accept json
// @Produce octet-stream
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param format query string false "File format" Enums(excel, pdf)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reports/export/daily/{date} [get]
// @Security BearerAuth
func (handler *Handler) ExportDaily(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportDailyReport")
	defer scope.End()

	file, err := handler.service.ExportDaily(ctx, chi.URLParam(r, constant.RequestParamDate), r.URL.Query().Get(constant.RequestParamFormat))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export daily report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.FileName, file.ContentType, file.Data)
}

// @Summary Export monthly report
// @Description Download the monthly report as a spreadsheet or PDF.
// @Tags Report
// @Accept json
// @Produce octet-stream
// @Param year path integer true "Year"
// @Param month path integer true "Month"
// @Param format query string false "File format" Enums(excel, pdf)
// @Success 200 {file} file "Report file"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/reports/export/monthly/{year}/{month} [get]
// @Security BearerAuth
func (handler *Handler) ExportMonthly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportMonthlyReport")
	defer scope.End()

	year, month, err := yearMonth(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	file, err := handler.service.ExportMonthly(ctx, year, month, r.URL.Query().Get(constant.RequestParamFormat))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export monthly report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.FileName, file.ContentType, file.Data)
}
