package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, orderH *handler.OrderHandler, productH *handler.ProductHandler, auditH *handler.AuditLogHandler) {
	orderH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
	auditH.RegisterRoutes(e)
}
