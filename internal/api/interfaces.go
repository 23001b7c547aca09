// interfaces.go - Handler interface definitions
package api

import (
	"github.com/labstack/echo/v4"
)

// ExtractHandler handles document upload and extraction
type ExtractHandler interface {
	HandleExtract(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}
