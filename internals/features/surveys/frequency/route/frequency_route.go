package route

import (
	"github.com/gofiber/fiber/v2"

	"cosmo_stats_backend/internals/features/surveys/frequency/controller"
)

// FrequencyRoutes mounts the read-only frequency endpoints under api.
func FrequencyRoutes(api fiber.Router, ctl *controller.FrequencyController) {
	g := api.Group("/frequency-ratings")
	g.Get("/", ctl.Get)
	g.Get("/averages", ctl.Averages)
}
