package service

import (
	"math"

	"cosmo_stats_backend/internals/constants"
	"cosmo_stats_backend/internals/features/surveys/frequency/model"
)

// AverageResults averages S, A and N over the non-sentinel results and
// renormalises the rounded averages so they add up to exactly 100.
func AverageResults(results []model.FrequencyResult) model.FrequencyResult {
	var s, a, n, count int
	for _, r := range results {
		if r.IsSentinel() {
			continue
		}
		s += r.S
		a += r.A
		n += r.N
		count++
	}
	if count == 0 {
		return model.Sentinel(model.OutcomeNoData)
	}

	avg := func(total int) int {
		return int(math.Round(float64(total) / float64(count)))
	}
	out := model.FrequencyResult{S: avg(s), A: avg(a), N: avg(n), Status: model.OutcomeOK}
	renormalize(&out)
	return out
}

// renormalize puts the whole rounding delta on the largest bucket; ties go to
// S, then A, then N.
func renormalize(r *model.FrequencyResult) {
	delta := 100 - r.Sum()
	if delta == 0 {
		return
	}
	buckets := []*int{&r.S, &r.A, &r.N}
	largest := buckets[0]
	for _, b := range buckets[1:] {
		if *b > *largest {
			largest = b
		}
	}
	*largest += delta
}

// CategoryAverages summarises every section of the report per role.
func CategoryAverages(report model.Report) []model.SectionAverage {
	out := make([]model.SectionAverage, 0, len(report.Sections))
	for _, sec := range report.Sections {
		avg := model.SectionAverage{
			Key:     sec.Key,
			Title:   sec.Title,
			Results: make(map[constants.Role]model.FrequencyResult, len(constants.AllRoles)),
		}
		for _, role := range constants.AllRoles {
			cells := make([]model.FrequencyResult, 0, len(sec.Items))
			for _, it := range sec.Items {
				if r, ok := it.Results[role]; ok {
					cells = append(cells, r)
				}
			}
			avg.Results[role] = AverageResults(cells)
		}
		out = append(out, avg)
	}
	return out
}
