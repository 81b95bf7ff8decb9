package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/domain/mock"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/infra"
	"github.com/secmon-lab/pushloop/pkg/usecase"
)

func newIdentityMock(login types.GitHubLogin) *mock.GitHubMock {
	return &mock.GitHubMock{
		GetAuthenticatedUserFunc: func(ctx context.Context) (*model.Identity, error) {
			return &model.Identity{Login: login, Scopes: "repo"}, nil
		},
		GetRateRemainingFunc: func(ctx context.Context) (int, error) {
			return 4999, nil
		},
	}
}

func TestValidateCredential(t *testing.T) {
	ctx := context.Background()

	t.Run("case-insensitive match uses resolved identity", func(t *testing.T) {
		gh := newIdentityMock("alice")
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		identity := gt.R1(uc.ValidateCredential(ctx, "Alice")).NoError(t)
		gt.V(t, identity.Login).Equal(types.GitHubLogin("alice"))
		gt.V(t, identity.RateRemaining).Equal(4999)
		gt.A(t, gh.GetRateRemainingCalls()).Length(1)
	})

	t.Run("mismatched claim proceeds with token owner", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHub(newIdentityMock("bob"))))

		identity := gt.R1(uc.ValidateCredential(ctx, "alice")).NoError(t)
		gt.V(t, identity.Login).Equal(types.GitHubLogin("bob"))
	})

	t.Run("empty claim uses token owner", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithGitHub(newIdentityMock("carol"))))

		identity := gt.R1(uc.ValidateCredential(ctx, "")).NoError(t)
		gt.V(t, identity.Login).Equal(types.GitHubLogin("carol"))
	})

	t.Run("rejected token is fatal", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetAuthenticatedUserFunc: func(ctx context.Context) (*model.Identity, error) {
				return nil, goerr.Wrap(&model.APIError{StatusCode: http.StatusUnauthorized, Message: "Bad credentials"}, "failed")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.ValidateCredential(ctx, "alice")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidCredential))
		gt.True(t, types.IsFatal(err))

		apiErr, ok := model.AsAPIError(err)
		gt.True(t, ok)
		gt.V(t, apiErr.StatusCode).Equal(http.StatusUnauthorized)
		gt.A(t, gh.GetRateRemainingCalls()).Length(0)
	})

	t.Run("network failure is fatal", func(t *testing.T) {
		gh := &mock.GitHubMock{
			GetAuthenticatedUserFunc: func(ctx context.Context) (*model.Identity, error) {
				return nil, goerr.New("connection refused")
			},
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		_, err := uc.ValidateCredential(ctx, "alice")
		gt.True(t, types.IsFatal(err))
	})

	t.Run("rate limit failure is not fatal", func(t *testing.T) {
		gh := newIdentityMock("alice")
		gh.GetRateRemainingFunc = func(ctx context.Context) (int, error) {
			return 0, goerr.New("rate limit endpoint unavailable")
		}
		uc := usecase.New(infra.New(infra.WithGitHub(gh)))

		identity := gt.R1(uc.ValidateCredential(ctx, "alice")).NoError(t)
		gt.V(t, identity.Login).Equal(types.GitHubLogin("alice"))
	})
}
