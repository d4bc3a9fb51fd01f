package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/dashboard/mocks"
	"hotel/internal/domains/dashboard/model/dto"
	"hotel/internal/handlers/dashboard"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fakeAuthRole struct {
	identity shared.Identity
}

func (f fakeAuthRole) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(shared.WithIdentity(r.Context(), f.identity)))
	})
}

func (f fakeAuthRole) RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !slices.Contains(roles, f.identity.Role) {
				response.WithError(w, failure.ForbiddenError)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func newRouter(t *testing.T, role string) (*chi.Mux, *mocks.MockDashboardService) {
	t.Helper()

	svc := mocks.NewMockDashboardService(gomock.NewController(t))
	handler := dashboard.New(svc, otelMocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux, fakeAuthRole{identity: shared.Identity{UserID: "user-1", Role: role}})

	return mux, svc
}

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestGetOverview(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleEmployee)

	svc.EXPECT().Overview(gomock.Any()).Return(dto.Overview{TodaySales: decimal.RequireFromString("75.50"), TotalRooms: 4}, nil)

	rec := get(mux, "/dashboard/overview")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_rooms":4`)
}

func TestGetSalesTrend(t *testing.T) {
	t.Run("manager", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().SalesTrend(gomock.Any(), 7).Return([]dto.TrendPoint{{Date: "2024-01-01"}}, nil)

		rec := get(mux, "/dashboard/sales-trend/7")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"date":"2024-01-01"`)
	})

	t.Run("employee forbidden", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleEmployee)

		rec := get(mux, "/dashboard/sales-trend/7")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("non-numeric days", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleAdmin)

		rec := get(mux, "/dashboard/sales-trend/week")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "days must be a number")
	})

	t.Run("out of range days from the service", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleAdmin)

		svc.EXPECT().SalesTrend(gomock.Any(), 0).Return(nil, failure.BadRequestFromString("days must be between 1 and 365"))

		rec := get(mux, "/dashboard/sales-trend/0")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetLeaderboard(t *testing.T) {
	t.Run("days omitted", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().Leaderboard(gomock.Any(), 0).Return(dto.Leaderboard{PeriodDays: 30}, nil)

		rec := get(mux, "/dashboard/employee-leaderboard")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"period_days":30`)
	})

	t.Run("days given", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().Leaderboard(gomock.Any(), 7).Return(dto.Leaderboard{PeriodDays: 7}, nil)

		rec := get(mux, "/dashboard/employee-leaderboard?days=7")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed days", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleManager)

		rec := get(mux, "/dashboard/employee-leaderboard?days=abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("employee forbidden", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleEmployee)

		rec := get(mux, "/dashboard/employee-leaderboard")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetBreakdowns(t *testing.T) {
	t.Run("category breakdown is open to employees", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().CategoryBreakdown(gomock.Any(), "2024-01-01").Return([]dto.CategoryBreakdown{{Category: "Food", Total: decimal.NewFromInt(20)}}, nil)

		rec := get(mux, "/dashboard/category-breakdown/2024-01-01")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"category":"Food"`)
	})

	t.Run("payment method breakdown needs a manager", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleEmployee)

		rec := get(mux, "/dashboard/payment-method-breakdown/2024-01-01")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("payment method breakdown", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().PaymentMethodBreakdown(gomock.Any(), "2024-01-01").Return([]dto.PaymentMethodBreakdown{{PaymentMethod: "Cash", Count: 2}}, nil)

		rec := get(mux, "/dashboard/payment-method-breakdown/2024-01-01")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"payment_method":"Cash"`)
	})
}
