package adminapi

import (
	"github.com/labstack/echo/v4"

	"github.com/beautyfind/beautyfind/internal/moderation"
	"github.com/beautyfind/beautyfind/internal/webserver"
)

func registerDashboardRoutes() {
	webserver.ApiGET("/admin/pending", listPendingProducts)
	webserver.ApiPOST("/admin/pending/:id/review", startReview)
	webserver.ApiPOST("/admin/pending/:id/approve", approvePending)
	webserver.ApiPOST("/admin/pending/:id/reject", rejectPending)
	webserver.ApiGET("/admin/stats", dashboardStats)
	webserver.ApiGET("/admin/accounts", listAccounts)
	webserver.ApiGET("/admin/activity", recentActivity)
}

func listPendingProducts(c echo.Context) error {
	return ok(c, GetApp(c).Moderation().Pending())
}

func startReview(c echo.Context) error {
	p, err := GetApp(c).Moderation().StartReview(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func approvePending(c echo.Context) error {
	p, err := GetApp(c).Moderation().Approve(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func rejectPending(c echo.Context) error {
	p, err := GetApp(c).Moderation().Reject(c.Param("id"))
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, p)
}

func dashboardStats(c echo.Context) error {
	a := GetApp(c)
	return ok(c, map[string]interface{}{
		"totalProducts": a.Catalog().Size(),
		"pendingCount":  a.Moderation().PendingCount(),
		"activeUsers":   len(moderation.SampleAccounts()),
		"analytics":     moderation.SampleAnalytics(),
	})
}

func listAccounts(c echo.Context) error {
	return ok(c, moderation.SampleAccounts())
}

func recentActivity(c echo.Context) error {
	return ok(c, GetApp(c).Moderation().RecentActivity())
}
