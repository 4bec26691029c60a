// file: internals/features/surveys/reports/service/xlsx.go
package service

import (
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"cosmo_stats_backend/internals/constants"
	freqmodel "cosmo_stats_backend/internals/features/surveys/frequency/model"
	"cosmo_stats_backend/internals/features/surveys/reports/model"
	respmodel "cosmo_stats_backend/internals/features/surveys/respondents/model"
)

const (
	respondentsSheet = "Encuestados"
	averagesSheet    = "Promedios"
)

type sheetWriter struct {
	f      *excelize.File
	name   string
	row    int
	header int
}

func (w *sheetWriter) write(values ...interface{}) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(w.name, cell, &values)
}

// writeHeader writes a bold row.
func (w *sheetWriter) writeHeader(values ...interface{}) error {
	if err := w.write(values...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, w.row)
	last, _ := excelize.CoordinatesToCellName(len(values), w.row)
	return w.f.SetCellStyle(w.name, first, last, w.header)
}

func (w *sheetWriter) blank() { w.row++ }

// RenderXLSX writes the respondents sheet, one sheet per section, and the
// averages sheet.
func RenderXLSX(b model.Bundle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DCE6F1"}},
	})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", respondentsSheet); err != nil {
		return nil, err
	}
	if err := writeRespondents(&sheetWriter{f: f, name: respondentsSheet, header: header}, b); err != nil {
		return nil, err
	}

	for _, sec := range b.Report.Sections {
		name := sheetName(sec.Title, string(sec.Key))
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		if err := writeSection(&sheetWriter{f: f, name: name, header: header}, sec); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(name, "A", "A", 70); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(averagesSheet); err != nil {
		return nil, err
	}
	if err := writeAverages(&sheetWriter{f: f, name: averagesSheet, header: header}, b.Averages); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(averagesSheet, "A", "A", 40); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRespondents(w *sheetWriter, b model.Bundle) error {
	if err := w.write(reportTitle); err != nil {
		return err
	}
	if err := w.write("Institución", schoolLabel(b.Report.School)); err != nil {
		return err
	}
	if err := w.write("Generado", b.Report.GeneratedAt.Format("2006-01-02 15:04 MST")); err != nil {
		return err
	}
	w.blank()

	if err := w.writeHeader("Rol", "Respuestas"); err != nil {
		return err
	}
	for _, role := range constants.AllRoles {
		if err := w.write(role.Label(), b.Profile.Counts[role]); err != nil {
			return err
		}
	}

	groups := []struct {
		title  string
		slices []respmodel.Slice
	}{
		{"Docentes por nivel", b.Profile.TeacherGrades},
		{"Jornada de docentes", b.Profile.TeacherSchedules},
		{"Estudiantes por grado", b.Profile.StudentGrades},
		{"Jornada de estudiantes", b.Profile.StudentSchedules},
		{"Acudientes por grado de sus estudiantes", b.Profile.GuardianGrades},
	}
	for _, g := range groups {
		w.blank()
		if err := w.writeHeader(g.title, "Cantidad"); err != nil {
			return err
		}
		for _, s := range g.slices {
			if err := w.write(s.Label, s.Value); err != nil {
				return err
			}
		}
	}
	return w.f.SetColWidth(w.name, "A", "A", 45)
}

func resultHeader(first string) []interface{} {
	row := []interface{}{first}
	for _, label := range roleLabels() {
		row = append(row, label+" S", label+" A", label+" N")
	}
	return row
}

func resultRow(first string, results map[constants.Role]freqmodel.FrequencyResult) []interface{} {
	row := []interface{}{first}
	for _, role := range constants.AllRoles {
		r, ok := results[role]
		if !ok {
			r = freqmodel.Sentinel(freqmodel.OutcomeNoData)
		}
		if r.IsSentinel() {
			row = append(row, sentinelText(r), "", "")
			continue
		}
		row = append(row, r.S, r.A, r.N)
	}
	return row
}

func writeSection(w *sheetWriter, sec freqmodel.SectionReport) error {
	if err := w.write(sec.Title); err != nil {
		return err
	}
	if err := w.writeHeader(resultHeader("Ítem")...); err != nil {
		return err
	}
	for _, item := range sec.Items {
		if err := w.write(resultRow(item.DisplayText, item.Results)...); err != nil {
			return err
		}
	}
	return nil
}

func writeAverages(w *sheetWriter, averages []freqmodel.SectionAverage) error {
	if err := w.writeHeader(resultHeader("Categoría")...); err != nil {
		return err
	}
	for _, a := range averages {
		if err := w.write(resultRow(a.Title, a.Results)...); err != nil {
			return err
		}
	}
	return nil
}

// sheetName strips characters Excel rejects and keeps the 31 character limit.
func sheetName(title, fallback string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = fallback
	}
	for utf8.RuneCountInString(name) > 31 {
		_, size := utf8.DecodeLastRuneInString(name)
		name = name[:len(name)-size]
	}
	return name
}
