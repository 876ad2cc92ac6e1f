// Package response writes the JSON envelopes returned by the API.
package response

import (
	"net/http"
	"net/url"
	"strconv"

	deliverycontext "logistics/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Field-level context, 4xx only
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

// PageResponse is the envelope of every list endpoint.
type PageResponse[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []*T    `json:"results"`
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Page writes one page of results with absolute links to its neighbours.
func Page[T any](c echo.Context, results []*T, count int64, page int, hasNext, hasPrevious bool) error {
	if results == nil {
		results = []*T{}
	}

	body := PageResponse[T]{
		Count:   count,
		Results: results,
	}
	if hasNext {
		body.Next = pageURL(c, page+1)
	}
	if hasPrevious {
		body.Previous = pageURL(c, page-1)
	}

	return c.JSON(http.StatusOK, body)
}

// pageURL rebuilds the request URL pointing at page. The first page carries no page parameter.
func pageURL(c echo.Context, page int) *string {
	req := c.Request()

	query := req.URL.Query()
	if page <= 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   c.Scheme(),
		Host:     req.Host,
		Path:     req.URL.Path,
		RawQuery: query.Encode(),
	}
	link := u.String()

	return &link
}
