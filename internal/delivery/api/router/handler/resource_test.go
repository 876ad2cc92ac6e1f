package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"logistics/config"
	"logistics/internal/delivery/api/validator"
	domainerrors "logistics/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) echo.Context {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func TestListQuery(t *testing.T) {
	pagination := config.PaginationConfig{PageSize: 10, MaxPageSize: 50}

	tests := []struct {
		name     string
		target   string
		page     int
		pageSize int
		wantErr  error
	}{
		{name: "defaults", target: "/api/customers", page: 1, pageSize: 10},
		{name: "explicit page and size", target: "/api/customers?page=3&page_size=20", page: 3, pageSize: 20},
		{name: "size capped", target: "/api/customers?page_size=500", page: 1, pageSize: 50},
		{name: "bad size falls back", target: "/api/customers?page_size=lots", page: 1, pageSize: 10},
		{name: "non-numeric page", target: "/api/customers?page=last", wantErr: domainerrors.ErrInvalidPage},
		{name: "zero page", target: "/api/customers?page=0", wantErr: domainerrors.ErrInvalidPage},
		{name: "offset overflows", target: "/api/customers?page=4611686018427387905&page_size=2", wantErr: domainerrors.ErrInvalidPage},
		{name: "page above max int", target: "/api/customers?page=99999999999999999999", wantErr: domainerrors.ErrInvalidPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := listQuery(newTestContext(http.MethodGet, tt.target, ""), pagination)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.page, query.Page)
			assert.Equal(t, tt.pageSize, query.PageSize)
		})
	}
}

func TestListQuery_PassesFilters(t *testing.T) {
	query, err := listQuery(newTestContext(http.MethodGet, "/api/shipments?search=ann&ordering=-SH_CHARGES", ""), config.PaginationConfig{PageSize: 10})

	require.NoError(t, err)
	assert.Equal(t, "ann", query.Search)
	assert.Equal(t, "-SH_CHARGES", query.Ordering)
}

func TestPathRecID(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-4"} {
		c := newTestContext(http.MethodGet, "/api/customers/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		_, err := pathRecID("id")(c)
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound), raw)
	}

	c := newTestContext(http.MethodGet, "/api/customers/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	recID, err := pathRecID("id")(c)
	require.NoError(t, err)
	assert.EqualValues(t, 42, recID)
}

func TestBindAndValidate_MalformedBody(t *testing.T) {
	c := newTestContext(http.MethodPost, "/api/customers", `{"C_ID": "seven"`)

	err := bindAndValidate(c, &customerRequest{})

	var fieldErrs validator.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, "non_field_errors")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBindAndValidate_ZeroIsAValue(t *testing.T) {
	c := newTestContext(http.MethodPost, "/api/employees", `{
		"E_ID": 0, "E_NAME": "Eve", "E_BRANCH": "North", "E_DESIGNATION": "Driver", "E_ADDR": "X", "E_CONT_NO": 0
	}`)

	req := &employeeRequest{}
	require.NoError(t, bindAndValidate(c, req))
	assert.Equal(t, int64(0), req.Record().EID)
}
