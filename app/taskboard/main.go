package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/jrazmi/taskboard/app/taskboard/api"
	"github.com/jrazmi/taskboard/app/taskboard/config"
	"github.com/jrazmi/taskboard/bridge/scaffolding/mid"
	"github.com/jrazmi/taskboard/infrastructure/postgresdb"
	"github.com/jrazmi/taskboard/infrastructure/web"
	"github.com/jrazmi/taskboard/sdk/environment"
	"github.com/jrazmi/taskboard/sdk/logger"
	"github.com/jrazmi/taskboard/sdk/telemetry"
)

var build = "develop"
var appName = "TASKBOARD"

func main() {
	if err := environment.LoadEnv(); err != nil {
		fmt.Println("loading .env:", err)
		os.Exit(1)
	}

	log, err := logger.NewFromEnv(appName,
		logger.WithService("taskboard"),
		logger.WithTraceID(telemetry.TraceID),
	)
	if err != nil {
		fmt.Println("oh no we couldn't even get logging going.")
		os.Exit(1)
	}
	ctx := context.Background()

	if err := run(ctx, log); err != nil {
		log.ErrorContext(ctx, "startup", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *logger.Logger) error {
	log.InfoContext(ctx, "startup", "GOMAXPROCS", runtime.GOMAXPROCS(0), "build", build)

	// :*: START DATABASES :*:
	pg, err := postgresdb.NewFromEnv(appName, postgresdb.WithLogger(log.Logger))
	if err != nil {
		return fmt.Errorf("configuring postgres support: %w", err)
	}
	defer func() {
		log.InfoContext(ctx, "shutdown", "status", "closing database connection")
		pg.Close()
	}()

	if err := postgresdb.Migrate(ctx, pg, log.Logger); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}
	// END DATABASES //

	// REPOSITORIES //
	log.InfoContext(ctx, "startup", "status", "initializing repository support")
	siteCfg := config.Taskboard{
		Build:        build,
		Logger:       log,
		Pool:         pg,
		Repositories: config.NewPostgresRepositories(log, pg),
	}
	// END REPOSITORIES //

	handler, err := webHandler(siteCfg)
	if err != nil {
		return fmt.Errorf("webhandler: %w", err)
	}

	server, err := web.NewServerFromEnv(appName,
		web.WithHandler(handler),
		web.WithErrorLog(logger.NewStdLogger(log, slog.LevelError)),
	)
	if err != nil {
		return fmt.Errorf("webserver: %w", err)
	}
	if server.Config.EnableDebug {
		log.InfoContext(ctx, "startup", "status", "debug endpoints enabled", "path", "/debug/pprof/")
		handler.EnableDebug()
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.InfoContext(ctx, "startup", "status", "api router started", "host", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.InfoContext(ctx, "shutdown", "status", "shutdown started", "signal", sig)
		defer log.InfoContext(ctx, "shutdown", "status", "shutdown complete", "signal", sig)

		ctx, cancel := context.WithTimeout(ctx, server.Config.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func webHandler(cfg config.Taskboard) (*web.WebHandler, error) {

	// INITIALIZATION
	wh, err := web.NewWebHandlerFromEnv(appName,
		web.WithLogging(cfg.Logger.Logger),
		web.WithTelemetry(telemetry.NewTelemetry()),
		// GLOBAL MIDDLEWARE
		web.WithGlobalMiddleware(
			mid.Logger(cfg.Logger), // Request logging
			mid.Errors(cfg.Logger), // Error handling
			mid.Panics(),           // Panic recovery
		),
	)
	if err != nil {
		return nil, err
	}

	// API
	api.AddHandlers(wh, cfg, func(ctx context.Context) error {
		return postgresdb.StatusCheck(ctx, cfg.Pool)
	})

	return wh, nil
}
