package dashboard

import (
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/domains/dashboard/service"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router, mw middleware.AuthRole) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Use(mw.Auth)

		routerGroup.Get("/overview", handler.GetOverview)
		routerGroup.Get("/category-breakdown/{date}", handler.GetCategoryBreakdown)

		routerGroup.Group(func(managers chi.Router) {
			managers.Use(mw.RequireRole(constant.RoleManager, constant.RoleAdmin))

			managers.Get("/sales-trend/{days}", handler.GetSalesTrend)
			managers.Get("/employee-leaderboard", handler.GetLeaderboard)
			managers.Get("/payment-method-breakdown/{date}", handler.GetPaymentMethodBreakdown)
		})
	})
}

// @Summary Get dashboard overview
// @Description Retrieve the headline figures of today.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.Overview] "Overview"
// @Failure 500 {object} response.Error
// @Router /api/dashboard/overview [get]
// @Security BearerAuth
func (handler *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOverview")
	defer scope.End()

	overview, err := handler.service.Overview(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard overview")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, overview)
}

// @Summary Get sales trend
// @Description Retrieve daily revenue over the last days.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param days path integer true "Number of days"
// @Success 200 {object} response.Data[[]dto.TrendPoint] "Trend"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/dashboard/sales-trend/{days} [get]
// @Security BearerAuth
func (handler *Handler) GetSalesTrend(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSalesTrend")
	defer scope.End()

	days, err := shared.IntParam(constant.RequestParamDays, chi.URLParam(r, constant.RequestParamDays))
	if err != nil {
		response.WithError(w, err)

		return
	}

	trend, err := handler.service.SalesTrend(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sales trend")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, trend)
}

// GetLeaderboard ranks employees over ?days, thirty when absent.
// @Summary Get employee leaderboard
// @Description Rank employees by revenue.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param days query integer false "Number of days"
// @Success 200 {object} response.Data[dto.Leaderboard] "Leaderboard"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/dashboard/employee-leaderboard [get]
// @Security BearerAuth
func (handler *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeaderboard")
	defer scope.End()

	days := 0

	if raw := r.URL.Query().Get(constant.RequestParamDays); raw != "" {
		var err error

		days, err = shared.IntParam(constant.RequestParamDays, raw)
		if err != nil {
			response.WithError(w, err)

			return
		}
	}

	leaderboard, err := handler.service.Leaderboard(ctx, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get leaderboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, leaderboard)
}

// @Summary Get category breakdown
// @Description Split the revenue of a date by category.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.CategoryBreakdown] "Breakdown"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/dashboard/category-breakdown/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategoryBreakdown")
	defer scope.End()

	breakdown, err := handler.service.CategoryBreakdown(ctx, chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get category breakdown")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, breakdown)
}

// @Summary Get payment method breakdown
// @Description Split the revenue of a date by payment method.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.PaymentMethodBreakdown] "Breakdown"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/dashboard/payment-method-breakdown/{date} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentMethodBreakdown(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentMethodBreakdown")
	defer scope.End()

	breakdown, err := handler.service.PaymentMethodBreakdown(ctx, chi.URLParam(r, constant.RequestParamDate))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment method breakdown")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, breakdown)
}
