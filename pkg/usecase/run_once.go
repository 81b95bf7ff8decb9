package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/utils/errutil"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
)

// RunOnce renders the file and commit message for the current time and pushes
// them to every repository of job in order. A push failure is logged and the
// next repository is tried. A failed access check stops the cycle and is
// returned.
func (x *UseCase) RunOnce(ctx context.Context, job *model.PushJob) error {
	gh, err := x.github()
	if err != nil {
		return err
	}
	if job.Identity() == "" {
		return goerr.Wrap(types.ErrInvalidOption, "push job is not bound to a GitHub identity")
	}

	cycleID, ctx := logging.CtxCycleID(ctx)
	logger := logging.From(ctx).With(slog.String("cycle_id", cycleID.String()))
	ctx = logging.With(ctx, logger)

	now := logging.CtxTime(ctx)
	file := job.File()
	content := []byte(model.RenderFileContent(file.Template, now))
	commit := model.NewCommitRecord(model.RenderCommitMessage(job.CommitTemplate(), now), job.Identity())

	if err := x.clients.LocalFile().Write(file.LocalPath, content); err != nil {
		logger.Warn("Failed to update local file", slog.Any("error", err))
	}

	for _, repo := range job.Targets() {
		if err := ctx.Err(); err != nil {
			return err
		}

		result := &model.PushResult{
			Repository:    repo.FullName(),
			CycleID:       cycleID,
			CommitMessage: commit.Message,
			PushedAt:      now,
		}

		if err := x.CheckAccess(ctx, repo); err != nil {
			x.recordFailure(ctx, result, err)
			return err
		}

		sha, found := gh.GetFileSHA(ctx, repo, file.RemotePath)

		input := &interfaces.PutFileInput{
			Repo:    repo,
			Path:    file.RemotePath,
			Content: content,
			SHA:     sha,
			Commit:  commit,
		}
		if err := gh.PutFile(ctx, input); err != nil {
			logPushError(ctx, repo, file.RemotePath, err)
			x.recordFailure(ctx, result, err)
			continue
		}

		logger.Info("Successfully pushed file",
			slog.String("repo", repo.FullName()),
			slog.String("path", file.RemotePath),
			slog.String("commit_message", commit.Message),
			slog.Bool("created", !found),
		)
		result.Success = true
		result.Created = !found
		x.record(ctx, result)
	}

	return nil
}

func logPushError(ctx context.Context, repo model.RepositoryTarget, path string, err error) {
	logger := logging.From(ctx).With(
		slog.String("repo", repo.FullName()),
		slog.String("path", path),
	)

	apiErr, ok := model.AsAPIError(err)
	if !ok {
		errutil.HandleError(ctx, "Error while pushing file", err)
		return
	}

	switch apiErr.Category() {
	case types.ErrorCategoryNotFound:
		logger.Error("Repository or file not found",
			slog.String("url", apiErr.URL),
		)
	case types.ErrorCategoryUnauthorized:
		logger.Error("Invalid GitHub token or insufficient access, ensure the token is active and has proper access",
			slog.String("message", apiErr.Message),
		)
	case types.ErrorCategoryForbidden:
		logger.Error("Access denied while trying to push file, ensure the token has \"repo\" scope, you have write access, and the repository is not archived or locked",
			slog.String("message", apiErr.Message),
		)
	default:
		errutil.HandleError(ctx, "Error while pushing file", err)
	}
}

func (x *UseCase) recordFailure(ctx context.Context, result *model.PushResult, err error) {
	result.Success = false
	result.Category = types.ErrorCategoryUnknown
	result.Message = err.Error()
	if apiErr, ok := model.AsAPIError(err); ok {
		result.StatusCode = apiErr.StatusCode
		result.Category = apiErr.Category()
		result.Message = apiErr.Message
	}
	x.record(ctx, result)
}

func (x *UseCase) record(ctx context.Context, result *model.PushResult) {
	repo := x.clients.StatusRepository()
	if repo == nil {
		return
	}
	if err := repo.PutResult(ctx, result); err != nil {
		logging.From(ctx).Warn("Failed to record push result", slog.Any("error", err))
	}
}

// ListResults returns the latest push result of each repository
func (x *UseCase) ListResults(ctx context.Context) ([]*model.PushResult, error) {
	repo := x.clients.StatusRepository()
	if repo == nil {
		return nil, nil
	}
	results, err := repo.ListResults(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list push results")
	}
	return results, nil
}

