package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

type UseCase interface {
	ValidateCredential(ctx context.Context, claimed types.GitHubLogin) (*model.Identity, error)
	CheckAccess(ctx context.Context, repo model.RepositoryTarget) error
	RunOnce(ctx context.Context, job *model.PushJob) error
	Run(ctx context.Context, job *model.PushJob) error
	ListResults(ctx context.Context) ([]*model.PushResult, error)
}
