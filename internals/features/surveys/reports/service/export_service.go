// file: internals/features/surveys/reports/service/export_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	freqmodel "cosmo_stats_backend/internals/features/surveys/frequency/model"
	freqservice "cosmo_stats_backend/internals/features/surveys/frequency/service"
	"cosmo_stats_backend/internals/features/surveys/reports/model"
	respmodel "cosmo_stats_backend/internals/features/surveys/respondents/model"
)

type ReportBuilder interface {
	Build(ctx context.Context, school string) freqmodel.Report
}

type Profiler interface {
	Profile(ctx context.Context, school string) respmodel.Profile
}

type ExportService struct {
	Reports  ReportBuilder
	Profiles Profiler
	Log      *zap.Logger
}

func NewExportService(reports ReportBuilder, profiles Profiler, log *zap.Logger) *ExportService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ExportService{Reports: reports, Profiles: profiles, Log: log}
}

func (s *ExportService) Collect(ctx context.Context, school string) model.Bundle {
	report := s.Reports.Build(ctx, school)
	return model.Bundle{
		Report:   report,
		Averages: freqservice.CategoryAverages(report),
		Profile:  s.Profiles.Profile(ctx, school),
	}
}

// Export renders the school's document in the requested format.
func (s *ExportService) Export(ctx context.Context, school string, f model.Format) ([]byte, error) {
	b := s.Collect(ctx, school)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		out []byte
		err error
	)
	switch f {
	case model.FormatPDF:
		out, err = RenderPDF(b)
	case model.FormatXLSX:
		out, err = RenderXLSX(b)
	default:
		return nil, fmt.Errorf("unknown export format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", f, err)
	}
	s.Log.Info("report exported",
		zap.String("school", school),
		zap.String("format", string(f)),
		zap.Int("bytes", len(out)),
	)
	return out, nil
}
