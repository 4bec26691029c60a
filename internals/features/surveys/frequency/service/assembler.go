// file: internals/features/surveys/frequency/service/assembler.go
package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/catalog"
	"cosmo_stats_backend/internals/features/surveys/frequency/model"
)

// CellComputer is implemented by *Aggregator.
type CellComputer interface {
	ComputeFrequency(ctx context.Context, role constants.Role, question string, section constants.SectionKey, school string) model.FrequencyResult
}

// Assembler fans out one aggregation per (item, role) cell of the catalog and
// folds the results back into the catalog's shape.
type Assembler struct {
	Catalog     *catalog.Catalog
	Cells       CellComputer
	Concurrency int
	Log         *zap.Logger
	Now         func() time.Time
}

func NewAssembler(cat *catalog.Catalog, cells CellComputer, concurrency int, log *zap.Logger) *Assembler {
	if concurrency < 1 {
		concurrency = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Assembler{
		Catalog:     cat,
		Cells:       cells,
		Concurrency: concurrency,
		Log:         log.Named("assembler"),
		Now:         time.Now,
	}
}

// Build computes the whole report. Cell failures are already sentinels, so
// Build itself cannot fail.
func (as *Assembler) Build(ctx context.Context, school string) model.Report {
	start := as.Now()
	sections := as.Catalog.Sections()
	roles := constants.AllRoles

	// one slot per cell; each goroutine writes only its own
	slots := make([][][]model.FrequencyResult, len(sections))
	for i, sec := range sections {
		slots[i] = make([][]model.FrequencyResult, len(sec.Items))
		for j := range sec.Items {
			slots[i][j] = make([]model.FrequencyResult, len(roles))
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(as.Concurrency)
	for i, sec := range sections {
		for j, item := range sec.Items {
			for k, role := range roles {
				i, j, k, role := i, j, k, role
				question := item.Question(role)
				key := sec.Key
				g.Go(func() error {
					slots[i][j][k] = as.Cells.ComputeFrequency(gctx, role, question, key, school)
					return nil
				})
			}
		}
	}
	_ = g.Wait()

	report := model.Report{
		School:      school,
		GeneratedAt: start,
		Sections:    make([]model.SectionReport, len(sections)),
	}
	for i, sec := range sections {
		sr := model.SectionReport{Key: sec.Key, Title: sec.Title, Items: make([]model.ItemReport, len(sec.Items))}
		for j, item := range sec.Items {
			questions := make(map[constants.Role]string, len(roles))
			results := make(map[constants.Role]model.FrequencyResult, len(roles))
			for k, role := range roles {
				questions[role] = item.Question(role)
				results[role] = slots[i][j][k]
			}
			sr.Items[j] = model.ItemReport{
				DisplayText: item.DisplayText,
				Questions:   questions,
				Results:     results,
			}
		}
		report.Sections[i] = sr
	}

	as.Log.Info("report built",
		zap.String("school", school),
		zap.Int("cells", as.Catalog.Cells()),
		zap.Duration("took", time.Since(start)),
	)
	return report
}
