package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/gots/slice"
	"github.com/secmon-lab/pushloop/pkg/cli/config"
	"github.com/secmon-lab/pushloop/pkg/cli/prompt"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/infra"
	"github.com/secmon-lab/pushloop/pkg/usecase"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// IsTerminal is exported for testing purposes
var IsTerminal = prompt.IsTerminal

type pushConfig struct {
	github   config.GitHub
	job      config.PushJob
	sentry   config.Sentry
	noPrompt bool
}

func (x *pushConfig) Flags() []cli.Flag {
	return slice.Flatten(
		[]cli.Flag{
			&cli.BoolFlag{
				Name:        "no-prompt",
				Usage:       "Do not ask for missing values even if stdin is a terminal",
				Destination: &x.noPrompt,
				Sources:     cli.EnvVars("PUSHLOOP_NO_PROMPT"),
			},
		},
		x.github.Flags(),
		x.job.Flags(),
		x.sentry.Flags(),
	)
}

// setup completes the configuration, validates the token and returns a job
// bound to the account that owns the token
func (x *pushConfig) setup(ctx context.Context) (*usecase.UseCase, *model.PushJob, error) {
	if !x.noPrompt && IsTerminal() {
		p := prompt.NewTerminal()
		if err := x.github.Prompt(p); err != nil {
			return nil, nil, err
		}
		if err := x.job.Prompt(p); err != nil {
			return nil, nil, err
		}
	}

	logging.From(ctx).Debug("configuration",
		slog.Any("GitHub", &x.github),
		slog.Any("Job", &x.job),
		slog.Any("Sentry", &x.sentry),
	)

	if err := x.sentry.Configure(ctx); err != nil {
		return nil, nil, err
	}

	job, err := x.job.Build(x.github.Token(), x.github.Username())
	if err != nil {
		return nil, nil, err
	}

	client, err := x.github.NewClient()
	if err != nil {
		return nil, nil, err
	}

	uc := usecase.New(infra.New(infra.WithGitHub(client)))

	identity, err := uc.ValidateCredential(ctx, job.Identity())
	if err != nil {
		return nil, nil, err
	}

	return uc, job.WithIdentity(identity.Login), nil
}
