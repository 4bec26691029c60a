// file: internals/features/surveys/frequency/controller/frequency_controller.go
package controller

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/features/surveys/frequency/dto"
	"cosmo_stats_backend/internals/features/surveys/frequency/model"
	"cosmo_stats_backend/internals/features/surveys/frequency/service"
	helper "cosmo_stats_backend/internals/helpers"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type ReportBuilder interface {
	Build(ctx context.Context, school string) model.Report
}

/* =======================================================
   CONTROLLER
   ======================================================= */

type FrequencyController struct {
	Reports  ReportBuilder
	Store    Pinger
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewFrequencyController(reports ReportBuilder, store Pinger, v *validator.Validate, log *zap.Logger) *FrequencyController {
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &FrequencyController{Reports: reports, Store: store, Validate: v, Log: log}
}

// parse reads and validates ?school=; on failure the response is already written.
func (ctl *FrequencyController) parse(c *fiber.Ctx) (dto.FrequencyQuery, bool, error) {
	var q dto.FrequencyQuery
	if err := c.QueryParser(&q); err != nil {
		return q, false, helper.JsonError(c, fiber.StatusBadRequest, "invalid query")
	}
	q.Normalize()
	if err := ctl.Validate.Struct(q); err != nil {
		return q, false, helper.JsonValidationError(c, helper.FieldErrors(err))
	}
	return q, true, nil
}

// build pings the store first: an unreachable store fails the whole request,
// anything after that degrades per cell.
func (ctl *FrequencyController) build(c *fiber.Ctx, school string) (model.Report, error) {
	ctx := helper.RequestContext(c)
	if err := ctl.Store.Ping(ctx); err != nil {
		ctl.Log.Error("store unreachable", zap.Error(err))
		return model.Report{}, fiber.NewError(fiber.StatusInternalServerError, "Internal server error")
	}
	return ctl.Reports.Build(ctx, school), nil
}

// GET /api/frequency-ratings?school=
func (ctl *FrequencyController) Get(c *fiber.Ctx) error {
	q, ok, err := ctl.parse(c)
	if !ok {
		return err
	}
	report, err := ctl.build(c, q.School)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "frequency ratings", report)
}

// GET /api/frequency-ratings/averages?school=
func (ctl *FrequencyController) Averages(c *fiber.Ctx) error {
	q, ok, err := ctl.parse(c)
	if !ok {
		return err
	}
	report, err := ctl.build(c, q.School)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "category averages", dto.AveragesResponse{
		School:      report.School,
		GeneratedAt: report.GeneratedAt,
		Sections:    service.CategoryAverages(report),
	})
}
