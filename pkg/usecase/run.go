package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/utils/errutil"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
)

// Run creates the local file if it is missing, then calls RunOnce every
// job.Delay() until ctx is canceled. Only fatal errors end the loop early.
func (x *UseCase) Run(ctx context.Context, job *model.PushJob) error {
	logger := logging.From(ctx)
	file := job.File()

	if created, err := x.clients.LocalFile().EnsureExists(file.LocalPath, []byte(file.Template)); err != nil {
		logger.Error("Failed to create local file", slog.Any("error", err))
	} else if created {
		logger.Info("File created", slog.String("path", file.LocalPath))
	}

	repos := make([]string, 0)
	for _, target := range job.Targets() {
		repos = append(repos, target.FullName())
	}
	logger.Info("Starting auto push",
		slog.String("file", file.LocalPath),
		slog.String("remote_path", file.RemotePath),
		slog.Any("repositories", repos),
		slog.Duration("delay", job.Delay()),
	)

	for {
		if err := x.RunOnce(ctx, job); err != nil {
			if ctx.Err() != nil {
				break
			}
			if types.IsFatal(err) {
				return goerr.Wrap(err, "push loop stopped by fatal error")
			}
			errutil.HandleError(ctx, "Push cycle aborted", err)
		}

		logger.Info("Waiting before next push", slog.Duration("delay", job.Delay()))
		if err := x.wait(ctx, job.Delay()); err != nil {
			break
		}
	}

	logger.Info("Auto push stopped")
	return nil
}
