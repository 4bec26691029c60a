package service

import (
	"sort"
	"strings"

	"cosmo_stats_backend/internals/features/surveys/monitoring/model"
)

// SortKeys are the accepted sort_by values; unknown keys sort by school.
var SortKeys = map[string]func(model.SchoolMonitoring) int64{
	"teachers":  func(r model.SchoolMonitoring) int64 { return r.Submissions.Teacher },
	"students":  func(r model.SchoolMonitoring) int64 { return r.Submissions.Student },
	"guardians": func(r model.SchoolMonitoring) int64 { return r.Submissions.Guardian },
	"total": func(r model.SchoolMonitoring) int64 {
		return r.Submissions.Teacher + r.Submissions.Student + r.Submissions.Guardian
	},
}

// Sort orders rows in place. Ties fall back to the school name, ascending.
func Sort(rows []model.SchoolMonitoring, key string, desc bool) {
	count, byCount := SortKeys[key]
	sort.SliceStable(rows, func(i, j int) bool {
		if byCount {
			ci, cj := count(rows[i]), count(rows[j])
			if ci != cj {
				if desc {
					return ci > cj
				}
				return ci < cj
			}
			return strings.ToLower(rows[i].SchoolName) < strings.ToLower(rows[j].SchoolName)
		}
		a, b := strings.ToLower(rows[i].SchoolName), strings.ToLower(rows[j].SchoolName)
		if desc {
			return a > b
		}
		return a < b
	})
}
