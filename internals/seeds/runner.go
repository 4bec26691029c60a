package seeds

import (
	"path/filepath"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cosmo_stats_backend/internals/features/surveys/catalog"
	"cosmo_stats_backend/internals/seeds/surveys"
)

// RunAllSeeds fills existing survey tables with demo data. The tables
// themselves belong to the survey forms.
func RunAllSeeds(db *gorm.DB, cat *catalog.Catalog, dir string, log *zap.Logger) error {
	//* Survey submissions
	return surveys.SeedSubmissionsFromJSON(db, cat, filepath.Join(dir, "surveys", "data_submissions.json"), log)
}
