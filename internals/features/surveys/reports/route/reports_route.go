package route

import (
	"github.com/gofiber/fiber/v2"

	"cosmo_stats_backend/internals/features/surveys/reports/controller"
)

// ReportsRoutes mounts the export endpoints behind their own limiter.
func ReportsRoutes(api fiber.Router, ctl *controller.ReportsController, limit fiber.Handler) {
	api.Get("/reports/:school/pdf", limit, ctl.PDF)
	api.Get("/reports/:school/xlsx", limit, ctl.XLSX)
}
