package server

import (
	"app/internal/handler"
	custommw "app/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// New はechoを組み立てる。起動はStartで行う。
func New(log zerolog.Logger, orderH *handler.OrderHandler, productH *handler.ProductHandler, auditH *handler.AuditLogHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	//ブラウザクライアントから直接叩かれる
	e.Use(middleware.CORS())
	e.Use(custommw.RequestLogger(log))

	RegisterRoutes(e, orderH, productH, auditH)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
