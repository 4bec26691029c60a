package model

import (
	"fmt"
	"regexp"
	"strings"

	freq "cosmo_stats_backend/internals/features/surveys/frequency/model"
	resp "cosmo_stats_backend/internals/features/surveys/respondents/model"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatXLSX, "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown export format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "application/pdf"
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

// FileName is an ASCII-safe download name, e.g. "informe_IE_San_Jos.pdf".
func FileName(school string, f Format) string {
	base := strings.Trim(unsafeName.ReplaceAllString(school, "_"), "_")
	if base == "" {
		base = "general"
	}
	return "informe_" + base + "." + string(f)
}

// Bundle is everything one exported document shows.
type Bundle struct {
	Report   freq.Report
	Averages []freq.SectionAverage
	Profile  resp.Profile
}
