package report_test

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/report/mocks"
	"hotel/internal/domains/report/model/dto"
	"hotel/internal/handlers/report"
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

func newRouter(t *testing.T, role string) (*chi.Mux, *mocks.MockReportService) {
	t.Helper()

	svc := mocks.NewMockReportService(gomock.NewController(t))
	handler := report.New(svc, otelMocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux, fakeAuthRole{identity: shared.Identity{UserID: "emp-1", Role: role}})

	return mux, svc
}

func get(mux http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestGetDaily(t *testing.T) {
	t.Run("manager reads daily report", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().Daily(gomock.Any(), "2024-01-15").Return(dto.DailyReport{
			Date:              "2024-01-15",
			TotalSales:        decimal.RequireFromString("62.50"),
			TotalTransactions: 3,
		}, nil)

		rec := get(mux, "/reports/daily/2024-01-15")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total_transactions":3`)
	})

	t.Run("employee forbidden", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleEmployee)

		assert.Equal(t, http.StatusForbidden, get(mux, "/reports/daily/2024-01-15").Code)
	})
}

func TestGetMonthly(t *testing.T) {
	t.Run("parses year and month", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleAdmin)

		svc.EXPECT().Monthly(gomock.Any(), 2024, 2).Return(dto.MonthlyReport{Year: 2024, Month: 2}, nil)

		assert.Equal(t, http.StatusOK, get(mux, "/reports/monthly/2024/2").Code)
	})

	t.Run("non numeric month", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleAdmin)

		rec := get(mux, "/reports/monthly/2024/feb")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "month must be a number")
	})

	t.Run("invalid month from service", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleAdmin)

		svc.EXPECT().Monthly(gomock.Any(), 2024, 13).Return(dto.MonthlyReport{}, failure.BadRequestFromString("month must be between 1 and 12"))

		assert.Equal(t, http.StatusBadRequest, get(mux, "/reports/monthly/2024/13").Code)
	})
}

func TestGetEmployeePerformance(t *testing.T) {
	t.Run("employee reads own report", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().EmployeePerformance(gomock.Any(), "emp-1", "week").Return(dto.PerformanceReport{EmployeeID: "emp-1", Days: 7}, nil)

		assert.Equal(t, http.StatusOK, get(mux, "/reports/employee-performance/emp-1/week").Code)
	})

	t.Run("restricted by service", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().EmployeePerformance(gomock.Any(), "emp-2", "week").Return(dto.PerformanceReport{}, failure.ResourceRestrictedError)

		assert.Equal(t, http.StatusForbidden, get(mux, "/reports/employee-performance/emp-2/week").Code)
	})
}

func TestExportDaily(t *testing.T) {
	t.Run("sends attachment", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().ExportDaily(gomock.Any(), "2024-01-15", "pdf").Return(dto.ExportFile{
			FileName:    "daily_report_2024-01-15.pdf",
			ContentType: constant.ContentTypePDF,
			Data:        []byte("%PDF-1.3"),
		}, nil)

		rec := get(mux, "/reports/export/daily/2024-01-15?format=pdf")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.ContentTypePDF, rec.Header().Get(constant.RequestHeaderContentType))
		assert.Equal(t, `attachment; filename="daily_report_2024-01-15.pdf"`, rec.Header().Get(constant.RequestHeaderDisposition))
		assert.Equal(t, "%PDF-1.3", rec.Body.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().ExportDaily(gomock.Any(), "2024-01-15", "csv").Return(dto.ExportFile{}, failure.BadRequestFromString("format must be excel or pdf"))

		assert.Equal(t, http.StatusBadRequest, get(mux, "/reports/export/daily/2024-01-15?format=csv").Code)
	})
}

func TestExportMonthly(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleAdmin)

	svc.EXPECT().ExportMonthly(gomock.Any(), 2024, 1, "").Return(dto.ExportFile{
		FileName:    "monthly_report_2024_01.xlsx",
		ContentType: constant.ContentTypeXLSX,
		Data:        []byte("PK"),
	}, nil)

	rec := get(mux, "/reports/export/monthly/2024/1")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.ContentTypeXLSX, rec.Header().Get(constant.RequestHeaderContentType))
}
