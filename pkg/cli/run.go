package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/controller/server"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func runCommand() *cli.Command {
	var (
		addr string
		cfg  pushConfig
	)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Push the file to every repository periodically",
		Flags: append(cfg.Flags(),
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "Binding address of the status server. Disabled if empty",
				Sources:     cli.EnvVars("PUSHLOOP_ADDR"),
				Destination: &addr,
			},
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			defer cfg.sentry.Flush()

			uc, job, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			if addr != "" {
				shutdown, err := startStatusServer(ctx, addr, uc)
				if err != nil {
					return err
				}
				defer shutdown()
			}

			return uc.Run(ctx, job)
		},
	}
}

func startStatusServer(ctx context.Context, addr string, uc interfaces.UseCase) (func(), error) {
	logger := logging.From(ctx)

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to listen", goerr.V("addr", addr))
	}

	httpServer := &http.Server{
		Handler: server.New(uc).Mux(),

		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		logger.Info("starting status server", slog.String("addr", listener.Addr().String()))
		if err := httpServer.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("status server stopped", slog.Any("error", err))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(ctx); err != nil {
			logger.Error("failed to shutdown status server", slog.Any("error", err))
		}
	}, nil
}
