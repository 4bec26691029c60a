package controller

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/features/surveys/respondents/model"
	helper "cosmo_stats_backend/internals/helpers"
)

type Profiler interface {
	Profile(ctx context.Context, school string) model.Profile
}

type RespondentsController struct {
	Service Profiler
	Log     *zap.Logger
}

func NewRespondentsController(svc Profiler, log *zap.Logger) *RespondentsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &RespondentsController{Service: svc, Log: log}
}

// GET /api/respondents/:school
func (ctl *RespondentsController) Get(c *fiber.Ctx) error {
	school, err := helper.SchoolParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "respondents", ctl.Service.Profile(helper.RequestContext(c), school))
}
