package route

import (
	"github.com/gofiber/fiber/v2"

	"cosmo_stats_backend/internals/features/surveys/monitoring/controller"
)

func MonitoringRoutes(api fiber.Router, ctl *controller.MonitoringController) {
	api.Get("/monitoring", ctl.List)
}
