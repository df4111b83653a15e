//go:build unit

package httperr_test

import (
	"net/http"
	"testing"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: errs.Validation("bad"), want: http.StatusBadRequest},
		{name: "invalid state", err: errs.InvalidState("already cancelled"), want: http.StatusBadRequest},
		{name: "conflict", err: errs.Mark(errs.New("taken"), errs.ErrConflict), want: http.StatusBadRequest},
		{name: "unauthorized", err: errs.Unauthorized("no"), want: http.StatusUnauthorized},
		{name: "forbidden", err: errs.Forbidden("not yours"), want: http.StatusForbidden},
		{name: "not found", err: errs.NotFound("gone"), want: http.StatusNotFound},
		{name: "wrapped not found", err: errs.Wrap(errs.NotFound("gone"), "load booking"), want: http.StatusNotFound},
		{name: "upstream", err: errs.Upstream(errs.New("503"), "catalog down"), want: http.StatusInternalServerError},
		{name: "plain", err: errs.New("boom"), want: http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httperr.StatusOf(tc.err))
		})
	}
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var err error
	r.GET("/", func(c *gin.Context) {
		httperr.FromError(c, err)
	})

	t.Run("client errors expose the innermost message", func(t *testing.T) {
		err = errs.Wrap(errs.NotFound("Booking not found"), "get booking")
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "Booking not found")
		assert.NotContains(t, rec.Body.String(), "get booking")
	})

	t.Run("server errors hide details", func(t *testing.T) {
		err = errs.New("connection reset by peer")
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}

func TestAbortWithErrorDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Invalid query parameters", map[string]string{"field": "limit"})
	})

	rec := httptest.PerformRequest(t, r, http.MethodGet, "/", nil, "")

	var body struct {
		Message string            `json:"message"`
		Detail  map[string]string `json:"detail"`
	}
	httptest.DecodeResponseBody(t, rec, &body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid query parameters", body.Message)
	assert.Equal(t, "limit", body.Detail["field"])
}
