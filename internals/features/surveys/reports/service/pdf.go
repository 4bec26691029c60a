// file: internals/features/surveys/reports/service/pdf.go
package service

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"

	"cosmo_stats_backend/internals/constants"
	freqmodel "cosmo_stats_backend/internals/features/surveys/frequency/model"
	"cosmo_stats_backend/internals/features/surveys/reports/model"
	respmodel "cosmo_stats_backend/internals/features/surveys/respondents/model"
)

const (
	pageMargin   = 10.0
	bottomMargin = 15.0
	lineH        = 5.0
	itemColW     = 82.0
	bucketColW   = 12.0
	barMaxW      = 90.0
	font         = "Helvetica"
)

// pdfDoc wraps fpdf with the cp1252 translator the core fonts need for
// Spanish text.
type pdfDoc struct {
	*fpdf.Fpdf
	tr func(string) string
}

func newPDFDoc(b model.Bundle) *pdfDoc {
	f := fpdf.New("P", "mm", "A4", "")
	f.SetMargins(pageMargin, pageMargin, pageMargin)
	f.SetAutoPageBreak(true, bottomMargin)
	f.SetCreationDate(b.Report.GeneratedAt)
	f.SetTitle(reportTitle, true)
	f.SetSubject(schoolLabel(b.Report.School), true)
	f.SetCreator("cosmo-stats", false)
	f.AliasNbPages("")

	d := &pdfDoc{Fpdf: f, tr: f.UnicodeTranslatorFromDescriptor("")}
	f.SetFooterFunc(func() {
		f.SetY(-bottomMargin + 3)
		f.SetFont(font, "I", 8)
		f.SetTextColor(120, 120, 120)
		f.CellFormat(0, lineH, d.tr(fmt.Sprintf("Página %d/{nb}", f.PageNo())), "", 0, "C", false, 0, "")
		f.SetTextColor(0, 0, 0)
	})
	return d
}

func (d *pdfDoc) text(w, h float64, s, border string, ln int, align string, fill bool) {
	d.CellFormat(w, h, d.tr(s), border, ln, align, fill, 0, "")
}

func (d *pdfDoc) heading(s string, size float64) {
	d.SetFont(font, "B", size)
	d.text(0, size*0.5, s, "", 1, "L", false)
	d.Ln(2)
}

// ensureSpace starts a new page when h mm would cross the bottom margin.
func (d *pdfDoc) ensureSpace(h float64) bool {
	_, pageH := d.GetPageSize()
	if d.GetY()+h > pageH-bottomMargin {
		d.AddPage()
		return true
	}
	return false
}

// RenderPDF lays out the title page, the respondents page, then one page per
// section.
func RenderPDF(b model.Bundle) ([]byte, error) {
	d := newPDFDoc(b)

	d.titlePage(b.Report)
	d.respondentsPage(b.Profile)

	averages := make(map[constants.SectionKey]freqmodel.SectionAverage, len(b.Averages))
	for _, a := range b.Averages {
		averages[a.Key] = a
	}
	for _, sec := range b.Report.Sections {
		d.sectionPage(sec, averages[sec.Key])
	}

	if err := d.Error(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := d.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *pdfDoc) titlePage(r freqmodel.Report) {
	d.AddPage()
	d.SetY(90)
	d.SetFont(font, "B", 20)
	d.MultiCell(0, 10, d.tr(reportTitle), "", "C", false)
	d.Ln(8)
	d.SetFont(font, "", 14)
	d.text(0, 8, schoolLabel(r.School), "", 1, "C", false)
	d.SetFont(font, "", 10)
	d.text(0, 8, "Generado el "+r.GeneratedAt.Format("2006-01-02 15:04 MST"), "", 1, "C", false)
}

func (d *pdfDoc) respondentsPage(p respmodel.Profile) {
	d.AddPage()
	d.heading("Encuestados", 16)

	d.SetFont(font, "B", 10)
	d.SetFillColor(230, 230, 230)
	d.text(60, 7, "Rol", "1", 0, "L", true)
	d.text(30, 7, "Respuestas", "1", 1, "C", true)
	d.SetFont(font, "", 10)
	for _, role := range constants.AllRoles {
		d.text(60, 6, role.Label(), "1", 0, "L", false)
		d.text(30, 6, strconv.FormatInt(p.Counts[role], 10), "1", 1, "C", false)
	}
	d.Ln(6)

	d.distribution("Docentes por nivel", p.TeacherGrades)
	d.distribution("Jornada de docentes", p.TeacherSchedules)
	d.distribution("Estudiantes por grado", p.StudentGrades)
	d.distribution("Jornada de estudiantes", p.StudentSchedules)
	d.distribution("Acudientes por grado de sus estudiantes", p.GuardianGrades)
}

// distribution draws one table row per slice with a bar proportional to its
// share of the total.
func (d *pdfDoc) distribution(title string, slices []respmodel.Slice) {
	d.ensureSpace(8 + float64(len(slices))*lineH)
	d.SetFont(font, "B", 11)
	d.text(0, 7, title, "", 1, "L", false)
	d.SetFont(font, "", 9)

	total := respmodel.Total(slices)
	for _, s := range slices {
		d.ensureSpace(lineH)
		x, y := d.GetXY()
		d.text(45, lineH, s.Label, "", 0, "L", false)
		d.text(15, lineH, strconv.FormatInt(s.Value, 10), "", 0, "R", false)

		share := 0.0
		if total > 0 {
			share = float64(s.Value) / float64(total)
		}
		if w := share * barMaxW; w > 0 {
			r, g, bl := hexRGB(s.Color)
			d.SetFillColor(r, g, bl)
			d.Rect(x+63, y+1, w, lineH-2, "F")
		}
		d.SetXY(x+63+barMaxW+2, y)
		d.text(15, lineH, fmt.Sprintf("%.0f%%", share*100), "", 1, "R", false)
	}
	d.Ln(4)
}

func (d *pdfDoc) tableHeader() {
	d.SetFont(font, "B", 9)
	d.SetFillColor(220, 230, 241)
	x, y := d.GetXY()
	d.text(itemColW, 2*lineH, "Ítem", "1", 0, "C", true)
	for _, label := range roleLabels() {
		d.text(3*bucketColW, lineH, label, "1", 0, "C", true)
	}
	d.SetXY(x+itemColW, y+lineH)
	for range constants.AllRoles {
		for _, b := range []string{"S", "A", "N"} {
			d.text(bucketColW, lineH, b, "1", 0, "C", true)
		}
	}
	d.SetXY(x, y+2*lineH)
	d.SetFont(font, "", 8)
}

func (d *pdfDoc) resultCells(results map[constants.Role]freqmodel.FrequencyResult, h float64, fill bool) {
	for _, role := range constants.AllRoles {
		r, ok := results[role]
		if !ok {
			r = freqmodel.Sentinel(freqmodel.OutcomeNoData)
		}
		if r.IsSentinel() {
			d.text(3*bucketColW, h, sentinelText(r), "1", 0, "C", fill)
			continue
		}
		for _, v := range []int{r.S, r.A, r.N} {
			d.text(bucketColW, h, cellText(v), "1", 0, "C", fill)
		}
	}
}

func (d *pdfDoc) sectionPage(sec freqmodel.SectionReport, avg freqmodel.SectionAverage) {
	d.AddPage()
	d.heading(sec.Title, 14)
	d.SetFont(font, "", 8)
	d.text(0, lineH, "S = Siempre, A = Algunas veces, N = Nunca", "", 1, "L", false)
	d.Ln(2)
	d.tableHeader()

	for _, item := range sec.Items {
		d.SetFont(font, "", 8)
		lines := d.SplitText(d.tr(item.DisplayText), itemColW-2)
		if len(lines) == 0 {
			lines = []string{""}
		}
		h := float64(len(lines)) * lineH
		if d.ensureSpace(h) {
			d.tableHeader()
		}
		x, y := d.GetXY()
		d.MultiCell(itemColW, lineH, strings.Join(lines, "\n"), "1", "L", false)
		d.SetXY(x+itemColW, y)
		d.resultCells(item.Results, h, false)
		d.SetXY(x, y+h)
	}

	d.ensureSpace(lineH + 1)
	d.SetFont(font, "B", 8)
	d.SetFillColor(242, 242, 242)
	d.text(itemColW, lineH+1, "Promedio de la categoría", "1", 0, "L", true)
	d.resultCells(avg.Results, lineH+1, true)
	d.Ln(-1)
}

// hexRGB parses "#RRGGBB"; anything else is grey.
func hexRGB(s string) (int, int, int) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 128, 128, 128
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 128, 128, 128
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)
}
