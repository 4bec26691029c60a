// file: internals/features/surveys/respondents/service/distribution.go
package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"cosmo_stats_backend/internals/features/surveys/respondents/model"
	"cosmo_stats_backend/internals/features/surveys/submissions"
)

// missingLabel names answers left blank on the form.
const missingLabel = "Sin dato"

/* =======================================================
   Teacher grades → school level
   ======================================================= */

var levelOrder = []model.Slice{
	{Label: "Preescolar", Color: "#FF9F40"},
	{Label: "Primaria", Color: "#4B89DC"},
	{Label: "Secundaria", Color: "#37BC9B"},
	{Label: "Media", Color: "#967ADC"},
}

func schoolLevel(grade string) string {
	g := strings.TrimSpace(grade)
	switch g {
	case "Preescolar", "Primera infancia":
		return "Preescolar"
	case "1", "2", "3", "4", "5":
		return "Primaria"
	case "6", "7", "8", "9":
		return "Secundaria"
	case "10", "11", "12":
		return "Media"
	}
	return ""
}

// TeacherGradeDistribution counts every assigned grade by school level. All
// four levels are always present.
func TeacherGradeDistribution(assigned [][]string) []model.Slice {
	counts := map[string]int64{}
	for _, grades := range assigned {
		for _, g := range grades {
			if lvl := schoolLevel(g); lvl != "" {
				counts[lvl]++
			}
		}
	}
	out := make([]model.Slice, len(levelOrder))
	for i, s := range levelOrder {
		s.Value = counts[s.Label]
		out[i] = s
	}
	return out
}

/* =======================================================
   Student current grade
   ======================================================= */

type gradeName struct {
	label string
	order int
	color string
}

var studentGrades = map[string]gradeName{
	"5":  {"Quinto", 5, "#4472C4"},
	"6":  {"Sexto", 6, "#ED7D31"},
	"7":  {"Septimo", 7, "#A5A5A5"},
	"8":  {"Octavo", 8, "#FFC000"},
	"9":  {"Noveno", 9, "#5B9BD5"},
	"10": {"Decimo", 10, "#70AD47"},
	"11": {"Undécimo", 11, "#7030A0"},
	"12": {"Duodécimo", 12, "#C00000"},
}

func StudentGradeDistribution(rows []submissions.ValueCount) []model.Slice {
	type entry struct {
		model.Slice
		order int
	}
	merged := map[string]*entry{}
	for _, r := range rows {
		raw := strings.TrimSpace(r.Value)
		e := entry{Slice: model.Slice{Label: raw, Color: "#000000"}, order: 99}
		if raw == "" {
			e.Label = missingLabel
		}
		if g, ok := studentGrades[raw]; ok {
			e = entry{Slice: model.Slice{Label: g.label, Color: g.color}, order: g.order}
		}
		if m, ok := merged[e.Label]; ok {
			m.Value += r.Count
			continue
		}
		e.Value = r.Count
		merged[e.Label] = &e
	}

	list := make([]*entry, 0, len(merged))
	for _, e := range merged {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].order != list[j].order {
			return list[i].order < list[j].order
		}
		return list[i].Label < list[j].Label
	})
	out := make([]model.Slice, len(list))
	for i, e := range list {
		out[i] = e.Slice
	}
	return out
}

/* =======================================================
   Guardian: grades of the students in their care
   ======================================================= */

var guardianColors = map[string]string{
	"Preescolar": "#FF9F40", "Primera infancia": "#FF9F40",
	"1": "#4472C4", "2": "#ED7D31", "3": "#A5A5A5", "4": "#FFC000",
	"5": "#5B9BD5", "6": "#70AD47", "7": "#264478", "8": "#9E480E",
	"9": "#636363", "10": "#997300", "11": "#2F5597", "12": "#385723",
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

func guardianOrder(grade string) int {
	if grade == "Preescolar" || grade == "Primera infancia" {
		return 0
	}
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(grade, ""))
	if err != nil {
		return 99
	}
	return n
}

func guardianLabel(grade string) string {
	if grade == "Preescolar" || grade == "Primera infancia" {
		return grade
	}
	return "Grado " + grade
}

func defaultGuardianGrades() []model.Slice {
	out := []model.Slice{{Label: "Preescolar", Color: guardianColors["Preescolar"]}}
	for i := 1; i <= 12; i++ {
		k := strconv.Itoa(i)
		out = append(out, model.Slice{Label: guardianLabel(k), Color: guardianColors[k]})
	}
	return out
}

func GuardianGradeDistribution(grades [][]string) []model.Slice {
	counts := map[string]int64{}
	for _, gs := range grades {
		for _, g := range gs {
			if g = strings.TrimSpace(g); g != "" {
				counts[g]++
			}
		}
	}
	if len(counts) == 0 {
		return defaultGuardianGrades()
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := guardianOrder(keys[i]), guardianOrder(keys[j])
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})

	out := make([]model.Slice, len(keys))
	for i, k := range keys {
		color, ok := guardianColors[k]
		if !ok {
			color = "#CCCCCC"
		}
		out[i] = model.Slice{Label: guardianLabel(k), Value: counts[k], Color: color}
	}
	return out
}

/* =======================================================
   Schedule (jornada)
   ======================================================= */

var scheduleOrder = []model.Slice{
	{Label: "Mañana", Color: "#D55E00"},
	{Label: "Tarde", Color: "#0072B2"},
	{Label: "Noche", Color: "#548235"},
	{Label: "Única", Color: "#7030A0"},
}

var scheduleAliases = map[string]string{
	"MANANA": "Mañana", "MAÑANA": "Mañana",
	"TARDE": "Tarde",
	"NOCHE": "Noche",
	"UNICA": "Única", "ÚNICA": "Única",
}

// ScheduleDistribution merges spelling variants of each jornada. Unknown
// values keep their raw label, after the known ones.
func ScheduleDistribution(rows []submissions.ValueCount) []model.Slice {
	if len(rows) == 0 {
		out := make([]model.Slice, len(scheduleOrder))
		copy(out, scheduleOrder)
		return out
	}

	counts := map[string]int64{}
	var extra []string
	for _, r := range rows {
		raw := strings.TrimSpace(r.Value)
		label, ok := scheduleAliases[strings.ToUpper(raw)]
		if !ok {
			label = raw
			if raw == "" {
				label = missingLabel
			}
			if _, seen := counts[label]; !seen {
				extra = append(extra, label)
			}
		}
		counts[label] += r.Count
	}

	var out []model.Slice
	for _, s := range scheduleOrder {
		if v, ok := counts[s.Label]; ok {
			s.Value = v
			out = append(out, s)
		}
	}
	for _, label := range extra {
		out = append(out, model.Slice{Label: label, Value: counts[label], Color: "#000000"})
	}
	return out
}
