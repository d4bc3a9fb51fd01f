package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/handlers/user"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
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

func newRouter(t *testing.T, role string) (*chi.Mux, *mocks.MockUserService) {
	t.Helper()

	svc := mocks.NewMockUserService(gomock.NewController(t))
	handler := user.New(svc, otelMocks.NewOtel())

	mux := chi.NewRouter()
	handler.Router(mux, fakeAuthRole{identity: shared.Identity{UserID: "user-1", Role: role}})

	return mux, svc
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec
}

const newEmployee = `{"username":"waiter3","password":"waiter123","full_name":"Waiter Three"}`

func TestCreateEmployee(t *testing.T) {
	t.Run("admin creates employee", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleAdmin)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req dto.CreateUserRequest) (dto.UserResponse, error) {
				assert.Equal(t, "waiter3", req.Username)

				return dto.UserResponse{ID: "emp-3", Username: "waiter3", Role: constant.RoleEmployee}, nil
			})

		rec := serve(mux, http.MethodPost, "/employees/", newEmployee)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"username":"waiter3"`)
	})

	for _, role := range []string{constant.RoleEmployee, constant.RoleManager} {
		t.Run(role+" forbidden", func(t *testing.T) {
			mux, _ := newRouter(t, role)

			rec := serve(mux, http.MethodPost, "/employees/", newEmployee)

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}

	t.Run("short password", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleAdmin)

		rec := serve(mux, http.MethodPost, "/employees/", `{"username":"waiter3","password":"123","full_name":"Waiter Three"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetEmployees(t *testing.T) {
	t.Run("manager filters by role", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleManager)

		svc.EXPECT().List(gomock.Any(), constant.RoleEmployee).Return([]dto.UserResponse{{ID: "emp-1"}}, nil)

		rec := serve(mux, http.MethodGet, "/employees/?role=Employee", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("employee forbidden", func(t *testing.T) {
		mux, _ := newRouter(t, constant.RoleEmployee)

		rec := serve(mux, http.MethodGet, "/employees/", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("by department", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleAdmin)

		svc.EXPECT().ListByDepartment(gomock.Any(), "Dining").Return([]dto.UserResponse{}, nil)

		rec := serve(mux, http.MethodGet, "/employees/by-department/Dining", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestGetEmployee(t *testing.T) {
	t.Run("employee reads own record", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().Get(gomock.Any(), "user-1").Return(dto.UserResponse{ID: "user-1"}, nil)

		rec := serve(mux, http.MethodGet, "/employees/user-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("service refusal is forwarded", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleEmployee)

		svc.EXPECT().Get(gomock.Any(), "emp-2").Return(dto.UserResponse{}, failure.ForbiddenError)

		rec := serve(mux, http.MethodGet, "/employees/emp-2", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestUpdateEmployee(t *testing.T) {
	mux, svc := newRouter(t, constant.RoleManager)

	svc.EXPECT().Update(gomock.Any(), "emp-2", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, req dto.UpdateUserRequest) (dto.UserResponse, error) {
			require.NotNil(t, req.Department)
			assert.Equal(t, "Front Desk", *req.Department)

			return dto.UserResponse{ID: "emp-2"}, nil
		})

	rec := serve(mux, http.MethodPut, "/employees/emp-2", `{"department":"Front Desk"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeactivateEmployee(t *testing.T) {
	t.Run("admin deactivates", func(t *testing.T) {
		mux, svc := newRouter(t, constant.RoleAdmin)

		svc.EXPECT().Deactivate(gomock.Any(), "emp-2").Return(nil)

		rec := serve(mux, http.MethodPut, "/employees/emp-2/deactivate", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Employee deactivated successfully")
	})

	for _, role := range []string{constant.RoleEmployee, constant.RoleManager} {
		t.Run(role+" forbidden", func(t *testing.T) {
			mux, _ := newRouter(t, role)

			rec := serve(mux, http.MethodPut, "/employees/emp-2/deactivate", "")

			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}
