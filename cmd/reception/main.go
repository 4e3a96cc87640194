package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"reception/internal/reservations/handler"
	"reception/internal/reservations/registry"
	"reception/internal/reservations/service"
	"reception/internal/reservations/validator"
	"reception/pkg/config"
	apperrors "reception/pkg/errors"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

const ServiceName = "reception"

func main() {
	cfg := config.Load(ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:           ServiceName,
		Usage:          "in-memory hotel reception desk",
		HideVersion:    true,
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			{
				Name:  "demo",
				Usage: "register the sample hotel and book one stay",
				Action: func(c *cli.Context) error {
					return runDemo(c.Context, initServices(cfg), c.App.Writer, cfg.Currency)
				},
			},
			{
				Name:  "shell",
				Usage: "read reception commands line by line",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "read commands from `FILE` instead of stdin",
					},
				},
				Action: func(c *cli.Context) error {
					return runShell(c.Context, cfg, c.String("file"), c.App.Writer)
				},
			},
		},
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		appErr := apperrors.AsAppError(err)
		cfg.Log.Error("Command failed", "code", appErr.Code, "error", err)
		stop()
		os.Exit(appErr.ExitCode)
	}
}

func initServices(cfg *config.Config) service.ReceptionService {
	receptionValidator := validator.NewReceptionValidator(cfg.Log)
	receptionService := service.NewReceptionService(
		registry.New(),
		receptionValidator,
		cfg,
	)

	cfg.Log.Debug("Reception service initialized")
	return receptionService
}

func runShell(ctx context.Context, cfg *config.Config, path string, out io.Writer) error {
	var in io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return apperrors.InvalidInput("cannot open command file", err)
		}
		defer f.Close()
		in = f
	}

	sessionID := uuid.New().String()
	sessionCfg := *cfg
	sessionCfg.Log = cfg.Log.With("session_id", sessionID)

	sessionCfg.Log.Info("Reception shell started", "source", sourceName(path))
	h := handler.NewCommandHandler(initServices(&sessionCfg), out, &sessionCfg)
	if err := h.Serve(ctx, in); err != nil {
		return apperrors.Internal("Reception shell stopped", err)
	}
	sessionCfg.Log.Info("Reception shell finished")
	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
