package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

// CheckAccess requires push permission on repo. Not found, unauthorized and
// missing permission are fatal; any other failure is returned as
// types.ErrAccessCheckFailed.
func (x *UseCase) CheckAccess(ctx context.Context, repo model.RepositoryTarget) error {
	gh, err := x.github()
	if err != nil {
		return err
	}

	canPush, err := gh.CanPush(ctx, repo)
	if err != nil {
		if apiErr, ok := model.AsAPIError(err); ok {
			switch apiErr.Category() {
			case types.ErrorCategoryNotFound:
				return classify(types.ErrRepositoryNotFound, err,
					"repository not found, ensure the repository exists on GitHub and the name is correct",
					goerr.V("repo", repo.FullName()),
				)
			case types.ErrorCategoryUnauthorized:
				return classify(types.ErrInvalidCredential, err,
					"invalid GitHub token or insufficient repository access, ensure the token has \"repo\" scope and is still active",
					goerr.V("repo", repo.FullName()),
				)
			}
		}
		return classify(types.ErrAccessCheckFailed, err, "failed to check repository access",
			goerr.V("repo", repo.FullName()),
		)
	}

	if !canPush {
		return goerr.Wrap(types.ErrNoWriteAccess,
			"you don't have write access to the repository, ensure you have proper access to it",
			goerr.V("repo", repo.FullName()),
		)
	}

	return nil
}
