package dto_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/model"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.NewMetadata("admin-id", createdAt))

	assert.NotEmpty(t, metadata.CreatedAt)
	assert.Equal(t, metadata.CreatedAt, metadata.ModifiedAt)
	assert.Equal(t, "admin-id", metadata.CreatedBy)
	assert.Equal(t, "admin-id", metadata.ModifiedBy)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:   "all parameters",
			target: "/api/employees?page=2&limit=20&sort_by=username&sort_dir=desc",
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "username",
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name:           "defaults applied",
			target:         "/api/employees",
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:   "invalid values ignored",
			target: "/api/employees?page=-1&limit=abc&sort_dir=sideways",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.target, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Sanitize(t *testing.T) {
	params := dto.QueryParams{SortBy: "username; DROP TABLE users", SortDir: "DESC"}
	params.Sanitize("full_name", "full_name", "username")

	assert.Equal(t, "full_name", params.SortBy)
	assert.Equal(t, dto.SortDirDesc, params.SortDir)

	params = dto.QueryParams{SortBy: "username"}
	params.Sanitize("full_name", "full_name", "username")

	assert.Equal(t, "username", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "role", Value: "Employee", Operator: dto.FilterOperatorEq, Table: "users"},
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq, Table: "users"},
			dto.Filter{Field: "status", Value: []string{"Available", "Maintenance"}, Operator: dto.FilterOperatorIn},
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(users.role = :role AND users.is_active = :is_active AND status IN (:status_0, :status_1) )", where)
	assert.Equal(t, "Employee", args["role"])
	assert.Equal(t, true, args["is_active"])
	assert.Equal(t, "Available", args["status_0"])
	assert.Equal(t, "Maintenance", args["status_1"])
}

func TestFilter_RangeOperators(t *testing.T) {
	from := dto.Filter{Field: "sale_date", Value: "2024-01-01", Operator: dto.FilterOperatorGreaterEq, ArgName: "date_from"}
	to := dto.Filter{Field: "sale_date", Value: "2024-02-01", Operator: dto.FilterOperatorLess, ArgName: "date_to"}

	where, args := from.GetWhereClause()
	assert.Equal(t, "sale_date >= :date_from", where)
	assert.Equal(t, "2024-01-01", args["date_from"])

	where, args = to.GetWhereClause()
	assert.Equal(t, "sale_date < :date_to", where)
	assert.Equal(t, "2024-02-01", args["date_to"])
}

func TestFilterGroup_Empty(t *testing.T) {
	group := dto.FilterGroup{}

	where, args := group.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
