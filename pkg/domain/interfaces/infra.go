package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub LocalFile

import (
	"context"

	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

// GitHub is the subset of the GitHub REST API used by the push loop. Errors
// from a non-2xx response carry a *model.APIError.
type GitHub interface {
	// GetAuthenticatedUser resolves the account bound to the token (GET /user).
	GetAuthenticatedUser(ctx context.Context) (*model.Identity, error)
	// GetRateRemaining returns remaining core API calls (GET /rate_limit).
	GetRateRemaining(ctx context.Context) (int, error)
	// CanPush reports the push permission on a repository (GET /repos/{owner}/{repo}).
	CanPush(ctx context.Context, repo model.RepositoryTarget) (bool, error)
	// GetFileSHA returns the version token of path, or false if it does not exist.
	// Failures other than not found are logged and also reported as absent.
	GetFileSHA(ctx context.Context, repo model.RepositoryTarget, path string) (types.FileSHA, bool)
	// PutFile creates path when sha is empty, otherwise overwrites it conditionally.
	PutFile(ctx context.Context, input *PutFileInput) error
}

type PutFileInput struct {
	Repo    model.RepositoryTarget
	Path    string
	Content []byte
	SHA     types.FileSHA
	Commit  model.CommitRecord
}

// LocalFile is the on-disk copy of the pushed file.
type LocalFile interface {
	// EnsureExists writes content only if path is absent.
	EnsureExists(path string, content []byte) (bool, error)
	Write(path string, content []byte) error
}
