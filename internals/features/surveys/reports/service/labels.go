package service

import (
	"fmt"

	"cosmo_stats_backend/internals/constants"
	freqmodel "cosmo_stats_backend/internals/features/surveys/frequency/model"
)

const (
	reportTitle = "Informe de resultados de la encuesta de prácticas"
	noData      = "Sin datos"
	notAsked    = "N/A"
)

// cellText renders one bucket value; sentinels are handled by the caller.
func cellText(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// sentinelText distinguishes questions never asked of a role from cells
// that simply had nothing to count.
func sentinelText(r freqmodel.FrequencyResult) string {
	if r.Status == freqmodel.OutcomeNotApplicable {
		return notAsked
	}
	return noData
}

func schoolLabel(school string) string {
	if school == "" {
		return "Todas las instituciones"
	}
	return school
}

func roleLabels() []string {
	out := make([]string, len(constants.AllRoles))
	for i, r := range constants.AllRoles {
		out[i] = r.Label()
	}
	return out
}
