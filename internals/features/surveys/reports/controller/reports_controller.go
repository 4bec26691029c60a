// file: internals/features/surveys/reports/controller/reports_controller.go
package controller

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"cosmo_stats_backend/internals/features/surveys/reports/model"
	helper "cosmo_stats_backend/internals/helpers"
)

type Exporter interface {
	Export(ctx context.Context, school string, f model.Format) ([]byte, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type ReportsController struct {
	Service Exporter
	Store   Pinger
	Log     *zap.Logger
}

func NewReportsController(svc Exporter, store Pinger, log *zap.Logger) *ReportsController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReportsController{Service: svc, Store: store, Log: log}
}

// GET /api/reports/:school/pdf
func (ctl *ReportsController) PDF(c *fiber.Ctx) error {
	return ctl.export(c, model.FormatPDF)
}

// GET /api/reports/:school/xlsx
func (ctl *ReportsController) XLSX(c *fiber.Ctx) error {
	return ctl.export(c, model.FormatXLSX)
}

func (ctl *ReportsController) export(c *fiber.Ctx, f model.Format) error {
	school, err := helper.SchoolParam(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	ctx := helper.RequestContext(c)
	if err := ctl.Store.Ping(ctx); err != nil {
		ctl.Log.Error("store unreachable", zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	out, err := ctl.Service.Export(ctx, school, f)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "report generation timed out")
		}
		ctl.Log.Error("report export failed",
			zap.String("school", school),
			zap.String("format", string(f)),
			zap.Error(err),
		)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}

	c.Set(fiber.HeaderContentType, f.ContentType())
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+strconv.Quote(model.FileName(school, f)))
	c.Set(fiber.HeaderCacheControl, "no-store")
	return c.Status(fiber.StatusOK).Send(out)
}
