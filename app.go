package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"cosmo_stats_backend/internals/configs"
	database "cosmo_stats_backend/internals/databases"
	"cosmo_stats_backend/internals/features/surveys/catalog"
	frequencyService "cosmo_stats_backend/internals/features/surveys/frequency/service"
	monitoringService "cosmo_stats_backend/internals/features/surveys/monitoring/service"
	reportsService "cosmo_stats_backend/internals/features/surveys/reports/service"
	respondentsService "cosmo_stats_backend/internals/features/surveys/respondents/service"
	"cosmo_stats_backend/internals/features/surveys/submissions"
	"cosmo_stats_backend/internals/helpers/dbtime"
)

// application holds the wired services shared by serve and export.
type application struct {
	cfg configs.Config
	log *zap.Logger
	db  *gorm.DB
	cat *catalog.Catalog

	store      *submissions.Store
	assembler  *frequencyService.Assembler
	monitoring *monitoringService.MonitoringService
	profiles   *respondentsService.ProfileService
	exporter   *reportsService.ExportService
}

func newApplication() (*application, error) {
	note := configs.LoadEnv()
	cfg := configs.Load()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	log, err := configs.NewLogger(cfg.AppEnv)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log.Info(note)

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded", zap.Int("sections", len(cat.Sections())), zap.Int("cells", cat.Cells()))

	// 🔌 DB connect + pool
	db, err := database.ConnectDB(cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.TunePool(db, cfg.ReportConcurrency+4); err != nil {
		_ = database.Close(db)
		return nil, err
	}

	store := submissions.NewStore(db)
	aggregator := frequencyService.NewAggregator(store, log)
	assembler := frequencyService.NewAssembler(cat, aggregator, cfg.ReportConcurrency, log)
	assembler.Now = dbtime.Clock(dbtime.Location(cfg.Timezone))
	profiles := respondentsService.NewProfileService(store, log)

	return &application{
		cfg:        cfg,
		log:        log,
		db:         db,
		cat:        cat,
		store:      store,
		assembler:  assembler,
		monitoring: monitoringService.NewMonitoringService(store, cfg.MinRespondents, cfg.ReportConcurrency, log),
		profiles:   profiles,
		exporter:   reportsService.NewExportService(assembler, profiles, log),
	}, nil
}

func (a *application) ping(ctx context.Context) error {
	return a.store.Ping(ctx)
}

func (a *application) close() {
	if err := database.Close(a.db); err != nil {
		a.log.Warn("closing db", zap.Error(err))
	}
	_ = a.log.Sync()
}
