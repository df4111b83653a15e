package api

import (
	"net/http"

	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// bindJSON writes the 400 itself and reports whether the handler may continue.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if errs.Is(err, errs.ErrValidation) {
			httperr.FromError(c, err)
			return false
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request body", nil)
		return false
	}
	return true
}

func bindQuery(c *gin.Context, dst any) bool {
	if err := c.ShouldBindQuery(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return false
	}
	return true
}

func requireIdentity(c *gin.Context) (shared.Identity, bool) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Authorization token missing", nil)
		return shared.Identity{}, false
	}
	return identity, true
}
