package route

import (
	"github.com/gofiber/fiber/v2"

	"cosmo_stats_backend/internals/features/surveys/respondents/controller"
)

func RespondentsRoutes(api fiber.Router, ctl *controller.RespondentsController) {
	api.Get("/respondents/:school", ctl.Get)
}
