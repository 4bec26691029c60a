package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	frequencyController "cosmo_stats_backend/internals/features/surveys/frequency/controller"
	monitoringController "cosmo_stats_backend/internals/features/surveys/monitoring/controller"
	reportsController "cosmo_stats_backend/internals/features/surveys/reports/controller"
	respondentsController "cosmo_stats_backend/internals/features/surveys/respondents/controller"
	helper "cosmo_stats_backend/internals/helpers"
	"cosmo_stats_backend/internals/middlewares"
	routes "cosmo_stats_backend/internals/route"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

// errorHandler writes any error that reached Fiber in the JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
}

func newServer(a *application) *fiber.App {
	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          a.cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, a.cfg, a.log)

	validate := validator.New(validator.WithRequiredStructEnabled())
	routes.SetupRoutes(app, a.store, routes.Controllers{
		Frequency:   frequencyController.NewFrequencyController(a.assembler, a.store, validate, a.log),
		Monitoring:  monitoringController.NewMonitoringController(a.monitoring, a.log),
		Respondents: respondentsController.NewRespondentsController(a.profiles, a.log),
		Reports:     reportsController.NewReportsController(a.exporter, a.store, a.log),
	}, a.cfg.AppEnv, a.log)

	return app
}

func runServe(ctx context.Context) error {
	a, err := newApplication()
	if err != nil {
		return err
	}
	defer a.close()

	// warm-up: fail fast when the database is not reachable at all
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := a.ping(pingCtx); err != nil {
		a.log.Warn("database not reachable at startup", zap.Error(err))
	}
	cancel()

	app := newServer(a)

	errc := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("port", a.cfg.Port))
		errc <- app.Listen("0.0.0.0:" + a.cfg.Port)
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case err := <-errc:
		return err
	case <-quit:
	case <-ctx.Done():
	}

	a.log.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	return app.ShutdownWithContext(shutdownCtx)
}
