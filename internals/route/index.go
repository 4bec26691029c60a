// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	frequencyController "cosmo_stats_backend/internals/features/surveys/frequency/controller"
	frequencyRoute "cosmo_stats_backend/internals/features/surveys/frequency/route"
	monitoringController "cosmo_stats_backend/internals/features/surveys/monitoring/controller"
	monitoringRoute "cosmo_stats_backend/internals/features/surveys/monitoring/route"
	reportsController "cosmo_stats_backend/internals/features/surveys/reports/controller"
	reportsRoute "cosmo_stats_backend/internals/features/surveys/reports/route"
	respondentsController "cosmo_stats_backend/internals/features/surveys/respondents/controller"
	respondentsRoute "cosmo_stats_backend/internals/features/surveys/respondents/route"
	"cosmo_stats_backend/internals/middlewares"
)

var startTime time.Time

// Controllers are built in main and handed over already wired.
type Controllers struct {
	Frequency   *frequencyController.FrequencyController
	Monitoring  *monitoringController.MonitoringController
	Respondents *respondentsController.RespondentsController
	Reports     *reportsController.ReportsController
}

func SetupRoutes(app *fiber.App, store Pinger, ctl Controllers, env string, log *zap.Logger) {
	startTime = time.Now()

	log.Info("setting up base routes")
	BaseRoutes(app, store, env)

	api := app.Group("/api", middlewares.GlobalRateLimiter())

	log.Info("mounting survey routes")
	frequencyRoute.FrequencyRoutes(api, ctl.Frequency)
	monitoringRoute.MonitoringRoutes(api, ctl.Monitoring)
	respondentsRoute.RespondentsRoutes(api, ctl.Respondents)
	reportsRoute.ReportsRoutes(api, ctl.Reports, middlewares.ExportRateLimiter())
}
