package cli

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/pushloop/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func checkCommand() *cli.Command {
	var cfg pushConfig

	return &cli.Command{
		Name:    "check",
		Aliases: []string{"c"},
		Usage:   "Validate the token and write access to every repository without pushing",
		Flags:   cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			defer cfg.sentry.Flush()

			uc, job, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			logger := logging.From(ctx)
			for _, target := range job.Targets() {
				if err := uc.CheckAccess(ctx, target); err != nil {
					return err
				}
				logger.Info("Write access confirmed", slog.String("repo", target.FullName()))
			}

			return nil
		},
	}
}
