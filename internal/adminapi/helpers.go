// Package adminapi exposes the catalog, session and moderation operations
// over HTTP for the storefront and the admin dashboard.
package adminapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/beautyfind/beautyfind/internal/app"
	"github.com/beautyfind/beautyfind/internal/errs"
	"github.com/beautyfind/beautyfind/internal/webserver"
)

// GetApp fetches the application context injected by the webserver.
func GetApp(c echo.Context) app.AppContext {
	return c.Get(webserver.AppContextKey).(app.AppContext)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": 0,
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, details interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code": status,
		"error": map[string]interface{}{
			"code":    code,
			"message": message,
			"details": details,
		},
	})
}

// failErr maps the error taxonomy to HTTP statuses so callers can branch
// uniformly on the same failure shape.
func failErr(c echo.Context, err error) error {
	switch errs.KindOf(err) {
	case errs.KindValidation:
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	case errs.KindConflict:
		return fail(c, http.StatusConflict, "CONFLICT", err.Error(), nil)
	case errs.KindAuthorization:
		return fail(c, http.StatusUnauthorized, "NOT_AUTHENTICATED", err.Error(), nil)
	case errs.KindUnsupported:
		return fail(c, http.StatusBadRequest, "UNSUPPORTED", err.Error(), nil)
	case errs.KindNotFound:
		return fail(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errs.KindTransient:
		return fail(c, http.StatusBadGateway, "TRANSIENT_ERROR", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
	}
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code":     0,
		"data":     rows,
		"total":    total,
		"page":     page,
		"pageSize": pageSize,
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 12
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("perPage")); err == nil && ps > 0 && ps <= 100 {
		pageSize = ps
	}
	return page, pageSize
}

func parseLimit(c echo.Context, fallback int) int {
	if l, err := strconv.Atoi(c.QueryParam("limit")); err == nil && l > 0 && l <= 100 {
		return l
	}
	return fallback
}
