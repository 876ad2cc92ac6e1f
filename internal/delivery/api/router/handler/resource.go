// Package handler contains the HTTP handlers of the record API.
package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"logistics/config"
	"logistics/internal/delivery/api/response"
	"logistics/internal/delivery/api/validator"
	domainerrors "logistics/internal/domain/errors"
	"logistics/internal/domain/repository"
	"logistics/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Query parameters accepted by list endpoints.
const (
	queryPage     = "page"
	queryPageSize = "page_size"
	querySearch   = "search"
	queryOrdering = "ordering"
)

// ResourceHandler serves the collection and item routes of one record kind.
// R is the writable record, D the read shape.
type ResourceHandler[R any, D any] struct {
	uc         usecase.RecordUsecase[R, D]
	newRequest func() recordRequest[R]
	pagination config.PaginationConfig

	// recID resolves the item addressed by the route.
	recID func(c echo.Context) (int64, error)
}

func newResourceHandler[R any, D any](
	uc usecase.RecordUsecase[R, D],
	newRequest func() recordRequest[R],
	pagination config.PaginationConfig,
) *ResourceHandler[R, D] {
	return &ResourceHandler[R, D]{
		uc:         uc,
		newRequest: newRequest,
		pagination: pagination,
		recID:      pathRecID("id"),
	}
}

// List handles GET on the collection.
func (h *ResourceHandler[R, D]) List(c echo.Context) error {
	query, err := listQuery(c, h.pagination)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return response.Page(c, page.Items, page.Total, page.Page, page.HasNext(), page.HasPrevious())
}

// Create handles POST on the collection.
func (h *ResourceHandler[R, D]) Create(c echo.Context) error {
	req := h.newRequest()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Request().Context(), req.Record())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

// Get handles GET on an item.
func (h *ResourceHandler[R, D]) Get(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	detail, err := h.uc.Get(c.Request().Context(), recID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, detail)
}

// Update handles PUT on an item. Every writable field must be supplied.
func (h *ResourceHandler[R, D]) Update(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	req := h.newRequest()
	if err := bindAndValidate(c, req); err != nil {
		return err
	}

	updated, err := h.uc.Update(c.Request().Context(), recID, req.Record())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Patch handles PATCH on an item. Omitted fields keep their stored values.
func (h *ResourceHandler[R, D]) Patch(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.Patch(c.Request().Context(), recID, func(record *R) error {
		req := h.newRequest()
		req.Load(record)
		if err := bindAndValidate(c, req); err != nil {
			return err
		}
		*record = *req.Record()

		return nil
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE on an item.
func (h *ResourceHandler[R, D]) Delete(c echo.Context) error {
	recID, err := h.recID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), recID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Register mounts the collection at path and the item at path/:param.
func (h *ResourceHandler[R, D]) Register(g *echo.Group, path, param string) {
	g.GET(path, h.List)
	g.POST(path, h.Create)

	item := path + "/:" + param
	g.GET(item, h.Get)
	g.PUT(item, h.Update)
	g.PATCH(item, h.Patch)
	g.DELETE(item, h.Delete)
}

// pathRecID parses a rec_id route parameter. Anything but a positive integer addresses no record.
func pathRecID(param string) func(c echo.Context) (int64, error) {
	return func(c echo.Context) (int64, error) {
		recID, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil || recID < 1 {
			return 0, errors.Wrapf(domainerrors.ErrNotFound, "invalid %s %q", param, c.Param(param))
		}

		return recID, nil
	}
}

// resolvedRecID maps a business identifier route parameter to a rec_id.
func resolvedRecID(param string, resolve func(ctx context.Context, id string) (int64, error)) func(c echo.Context) (int64, error) {
	return func(c echo.Context) (int64, error) {
		return resolve(c.Request().Context(), c.Param(param))
	}
}

// listQuery reads paging and filters from the query string. A page that is
// not a positive integer is invalid; a bad page_size falls back to the default.
func listQuery(c echo.Context, pagination config.PaginationConfig) (repository.ListQuery, error) {
	query := repository.ListQuery{
		Page:     1,
		PageSize: pagination.PageSize,
		Search:   c.QueryParam(querySearch),
		Ordering: c.QueryParam(queryOrdering),
	}

	if raw := c.QueryParam(queryPage); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return query, errors.Wrapf(domainerrors.ErrInvalidPage, "invalid page %q", raw)
		}
		query.Page = page
	}

	if raw := c.QueryParam(queryPageSize); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			query.PageSize = size
		}
	}
	if pagination.MaxPageSize > 0 && query.PageSize > pagination.MaxPageSize {
		query.PageSize = pagination.MaxPageSize
	}

	// The row offset of the page must fit in an int.
	if query.PageSize > 0 && query.Page > math.MaxInt/query.PageSize {
		return query, errors.Wrapf(domainerrors.ErrInvalidPage, "page %d is out of range", query.Page)
	}

	return query, nil
}

// bindAndValidate decodes a JSON or form body into req and checks its rules.
func bindAndValidate(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindBody(c, req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusBadRequest {
			message, _ := httpErr.Message.(string)
			if message == "" {
				message = "Malformed request body."
			}

			return validator.FieldErrors{"non_field_errors": message}
		}

		return err
	}

	return c.Validate(req)
}
