// file: internals/features/surveys/monitoring/service/monitoring_service.go
package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/monitoring/model"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

type Store interface {
	Schools(ctx context.Context) ([]submissions.RectorModel, error)
	CountRespondents(ctx context.Context, role constants.Role, school string) (int64, error)
}

type MonitoringService struct {
	Store          Store
	MinRespondents int64
	Concurrency    int
	Log            *zap.Logger
}

func NewMonitoringService(store Store, minRespondents, concurrency int, log *zap.Logger) *MonitoringService {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MonitoringService{
		Store:          store,
		MinRespondents: int64(minRespondents),
		Concurrency:    concurrency,
		Log:            log.Named("monitoring"),
	}
}

// MeetsMinimum is true when every group reached the minimum sample size.
func MeetsMinimum(c model.RoleCounts, min int64) bool {
	return c.Teacher >= min && c.Student >= min && c.Guardian >= min
}

// Counts returns the submissions of each group for one school. A failed count
// is logged and reported as zero.
func (s *MonitoringService) Counts(ctx context.Context, school string) model.RoleCounts {
	var out model.RoleCounts
	targets := map[constants.Role]*int64{
		constants.RoleTeacher:  &out.Teacher,
		constants.RoleStudent:  &out.Student,
		constants.RoleGuardian: &out.Guardian,
	}
	g, gctx := errgroup.WithContext(ctx)
	for role, dst := range targets {
		role, dst := role, dst
		g.Go(func() error {
			n, err := s.Store.CountRespondents(gctx, role, school)
			if err != nil {
				s.Log.Error("respondent count failed",
					zap.String("school", school), zap.String("role", string(role)), zap.Error(err))
				n = 0
			}
			*dst = n
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// List builds the monitoring table. Only the school list itself can fail.
func (s *MonitoringService) List(ctx context.Context) ([]model.SchoolMonitoring, error) {
	schools, err := s.Store.Schools(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.SchoolMonitoring, len(schools))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Concurrency)
	for i, row := range schools {
		i, row := i, row
		g.Go(func() error {
			counts := s.Counts(gctx, row.SchoolName)
			position := deref(row.CurrentPosition)
			if position == "" {
				position = "Rector"
			}
			out[i] = model.SchoolMonitoring{
				SchoolName:         row.SchoolName,
				RectorName:         deref(row.RectorName),
				CurrentPosition:    position,
				PersonalEmail:      deref(row.PersonalEmail),
				InstitutionalEmail: deref(row.InstitutionalEmail),
				PersonalPhone:      deref(row.PersonalPhone),
				InstitutionalPhone: deref(row.InstitutionalPhone),
				PreferredContact:   deref(row.PreferredContact),
				Submissions:        counts,
				MeetsMinimum:       MeetsMinimum(counts, s.MinRespondents),
			}
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
