// Package webserver hosts the echo HTTP server and the route registry the
// API packages register their handlers into.
package webserver

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/beautyfind/beautyfind/internal/app"
)

// AppContextKey is the echo context key the application is stored under.
const AppContextKey = "appctx"

type WebServer struct {
	root   *echo.Echo
	appCtx app.AppContext
}

var server *WebServer

// Init creates the web server bound to the application context. Must be
// called before route registration.
func Init(appCtx app.AppContext) *WebServer {
	root := echo.New()
	root.HideBanner = true
	root.HidePort = true
	root.Use(middleware.Recover())
	root.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(AppContextKey, appCtx)
			return next(c)
		}
	})
	root.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
		}
		zap.L().Error("http error", zap.String("path", c.Path()), zap.Error(err))
		_ = c.JSON(code, map[string]interface{}{"code": code, "message": err.Error()})
	}

	server = &WebServer{root: root, appCtx: appCtx}
	return server
}

// Listen starts serving on the configured host/port and blocks.
func Listen() error {
	cfg := server.appCtx.Config()
	addr := fmt.Sprintf("%s:%d", cfg.Web.Host, cfg.Web.Port)
	zap.S().Infof("Web server listening on %s", addr)
	return server.root.Start(addr)
}

// Echo exposes the underlying router (used in handler tests).
func Echo() *echo.Echo {
	return server.root
}

func ApiGET(path string, h echo.HandlerFunc) {
	server.root.GET("/api"+path, h)
}

func ApiPOST(path string, h echo.HandlerFunc) {
	server.root.POST("/api"+path, h)
}

func ApiPUT(path string, h echo.HandlerFunc) {
	server.root.PUT("/api"+path, h)
}

func ApiDELETE(path string, h echo.HandlerFunc) {
	server.root.DELETE("/api"+path, h)
}
