package sale_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/sale/mocks"
	"hotel/internal/domains/sale/model/dto"
	"hotel/internal/handlers/sale"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func newRouter(t *testing.T, role string) (*chi.Mux, *mocks.MockSaleService) {
	t.Helper()

	svc := mocks.NewMockSaleService(gomock.NewController(t))
	handler := sale.New(svc, otelMocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux, fakeAuthRole{identity: shared.Identity{UserID: "emp-1", Role: role}})

	return mux, svc
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

func TestRecordSale(t *testing.T) {
	t.Run("recorded", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req dto.RecordSaleRequest) (dto.RecordSaleResponse, error) {
				assert.Equal(t, "2024-01-01", req.SaleDate)
				assert.True(t, req.Amount.Equal(decimal.RequireFromString("12.50")))

				return dto.RecordSaleResponse{SaleID: "sale-1"}, nil
			})

		rec := serve(mux, http.MethodPost, "/sales/record", `{"sale_date":"2024-01-01","category":"Food","amount":"12.50","payment_method":"Cash"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"sale_id":"sale-1"`)
	})

	tests := []struct {
		name string
		body string
	}{
		{name: "unknown category", body: `{"sale_date":"2024-01-01","category":"Spa","amount":"10"}`},
		{name: "zero amount", body: `{"sale_date":"2024-01-01","category":"Food","amount":"0"}`},
		{name: "sub-cent amount", body: `{"sale_date":"2024-01-01","category":"Food","amount":"0.001"}`},
		{name: "amount past the column range", body: `{"sale_date":"2024-01-01","category":"Food","amount":"100000000000"}`},
		{name: "malformed date", body: `{"sale_date":"01/01/2024","category":"Food","amount":"10"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux, _ := newRouter(t, constant.RoleEmployee)

			rec := serve(mux, http.MethodPost, "/sales/record", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("service refusal is forwarded", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().Record(gomock.Any(), gomock.Any()).Return(dto.RecordSaleResponse{}, failure.ForbiddenError)

		rec := serve(mux, http.MethodPost, "/sales/record", `{"employee_id":"emp-2","sale_date":"2024-01-01","category":"Food","amount":"10"}`)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetDailySales(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleEmployee)

	svc.EXPECT().DailyForEmployee(gomock.Any(), "emp-1", "2024-01-01").Return([]dto.SaleResponse{{SaleID: "sale-1"}}, nil)

	rec := serve(mux, http.MethodGet, "/sales/daily/emp-1/2024-01-01", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sale_id":"sale-1"`)
}

func TestGetMonthlySales(t *testing.T) {
	t.Run("manager with employee filter", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().Monthly(gomock.Any(), 2024, 1, "emp-2").Return([]dto.SaleResponse{}, nil)

		rec := serve(mux, http.MethodGet, "/sales/monthly/2024/1?employee_id=emp-2", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-numeric month", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleManager)

		rec := serve(mux, http.MethodGet, "/sales/monthly/2024/jan", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "month must be a number")
	})

	t.Run("employee forbidden", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleEmployee)

		rec := serve(mux, http.MethodGet, "/sales/monthly/2024/1", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestGetDailySummary(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleEmployee)

	svc.EXPECT().DailySummary(gomock.Any(), "2024-01-01").Return([]dto.EmployeeTotalResponse{}, nil)

	rec := serve(mux, http.MethodGet, "/sales/daily-summary/2024-01-01", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetEmployeePerformance(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleEmployee)

	svc.EXPECT().EmployeePerformance(gomock.Any(), "emp-2").Return(nil, failure.ForbiddenError)

	rec := serve(mux, http.MethodGet, "/sales/employee-performance/emp-2", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReferenceLists(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleEmployee)

	svc.EXPECT().Categories().Return([]string{"Room", "Food"})
	svc.EXPECT().PaymentMethods().Return([]string{"Cash"})

	rec := serve(mux, http.MethodGet, "/sales/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Food"`)

	rec = serve(mux, http.MethodGet, "/sales/payment-methods", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Cash"`)
}
