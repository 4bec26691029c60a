package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/features/surveys/monitoring/model"
	"cosmo_stats_backend/internals/features/surveys/monitoring/service"
	helper "cosmo_stats_backend/internals/helpers"
)

type Lister interface {
	List(ctx context.Context) ([]model.SchoolMonitoring, error)
}

type MonitoringController struct {
	Service Lister
	Log     *zap.Logger
}

func NewMonitoringController(svc Lister, log *zap.Logger) *MonitoringController {
	if log == nil {
		log = zap.NewNop()
	}
	return &MonitoringController{Service: svc, Log: log}
}

// GET /api/monitoring?page=&per_page=&sort_by=school|teachers|students|guardians|total&order=
func (ctl *MonitoringController) List(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "school", "asc", helper.MonitoringOpts)

	rows, err := ctl.Service.List(helper.RequestContext(c))
	if err != nil {
		ctl.Log.Error("monitoring list failed", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	if rows == nil {
		rows = []model.SchoolMonitoring{}
	}
	service.Sort(rows, p.SortBy, p.Desc())
	start, end := p.Window(len(rows))
	return helper.JsonPaginated(c, "monitoring", rows[start:end], helper.BuildMeta(int64(len(rows)), p))
}
