// file: internals/features/surveys/frequency/service/aggregator.go
package service

import (
	"context"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/frequency/model"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

// AnswerCounter is the one query shape the aggregator needs.
type AnswerCounter interface {
	CountAnswers(ctx context.Context, q submissions.AnswerQuery) ([]submissions.AnswerCount, error)
}

// Aggregator turns the raw answers of one question into an S/A/N split.
// It keeps no state between calls and is safe for concurrent use.
type Aggregator struct {
	Store AnswerCounter
	Log   *zap.Logger
}

func NewAggregator(store AnswerCounter, log *zap.Logger) *Aggregator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Aggregator{Store: store, Log: log.Named("frequency")}
}

// ComputeFrequency never fails: not-asked questions, empty results and query
// errors all come back as the -1 sentinel, tagged with the reason.
func (a *Aggregator) ComputeFrequency(
	ctx context.Context,
	role constants.Role,
	question string,
	section constants.SectionKey,
	school string,
) model.FrequencyResult {
	res := a.compute(ctx, role, question, section, school)
	cellsTotal.WithLabelValues(string(role), string(section), string(res.Status)).Inc()
	return res
}

func (a *Aggregator) compute(
	ctx context.Context,
	role constants.Role,
	question string,
	section constants.SectionKey,
	school string,
) model.FrequencyResult {
	if question == constants.NotApplicable {
		return model.Sentinel(model.OutcomeNotApplicable)
	}

	log := a.Log.With(
		zap.String("role", string(role)),
		zap.String("section", string(section)),
		zap.String("question", question),
		zap.String("school", school),
	)

	rows, err := a.Store.CountAnswers(ctx, submissions.AnswerQuery{
		Role:     role,
		Section:  section,
		Question: question,
		School:   school,
	})
	if err != nil {
		log.Error("frequency query failed", zap.Error(err))
		return model.Sentinel(model.OutcomeQueryFailure)
	}
	if len(rows) == 0 {
		log.Debug("no answers for question")
		return model.Sentinel(model.OutcomeNoData)
	}

	var always, sometimes, never int64
	unrecognized := map[string]int64{}
	for _, row := range rows {
		switch ClassifyRating(row.Rating) {
		case RatingAlways:
			always += row.Count
		case RatingSometimes:
			sometimes += row.Count
		case RatingNever:
			never += row.Count
		default:
			unrecognized[strings.ToLower(strings.TrimSpace(row.Rating))] += row.Count
		}
	}
	if len(unrecognized) > 0 {
		unrecognizedTotal.WithLabelValues(string(role), string(section)).Add(float64(sum(unrecognized)))
		log.Warn("unrecognized ratings excluded", zap.Strings("ratings", keys(unrecognized)))
	}

	total := always + sometimes + never
	if total == 0 {
		return model.Sentinel(model.OutcomeNoData)
	}

	return model.FrequencyResult{
		S:      percent(always, total),
		A:      percent(sometimes, total),
		N:      percent(never, total),
		Status: model.OutcomeOK,
	}
}

// percent rounds half away from zero.
func percent(part, total int64) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

func sum(m map[string]int64) int64 {
	var n int64
	for _, v := range m {
		n += v
	}
	return n
}

func keys(m map[string]int64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
