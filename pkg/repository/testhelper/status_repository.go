package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/repository"
)

// TestAll runs all test cases for StatusRepository
func TestAll(t *testing.T, repo interfaces.StatusRepository) {
	t.Run("PutAndList", func(t *testing.T) {
		TestPutAndList(t, repo)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, repo)
	})
	t.Run("InvalidInput", func(t *testing.T) {
		TestInvalidInput(t, repo)
	})
}

func newRepoName() string {
	return fmt.Sprintf("owner/repo-%s", uuid.NewString())
}

func find(results []*model.PushResult, name string) (int, *model.PushResult) {
	for i, r := range results {
		if r.Repository == name {
			return i, r
		}
	}
	return -1, nil
}

func TestPutAndList(t *testing.T, repo interfaces.StatusRepository) {
	ctx := context.Background()
	repoA, repoB := newRepoName(), newRepoName()
	now := time.Now().UTC()

	gt.NoError(t, repo.PutResult(ctx, &model.PushResult{
		Repository: repoA,
		CycleID:    types.NewCycleID(),
		Success:    true,
		PushedAt:   now,
	}))
	gt.NoError(t, repo.PutResult(ctx, &model.PushResult{
		Repository: repoB,
		CycleID:    types.NewCycleID(),
		StatusCode: 403,
		Category:   types.ErrorCategoryForbidden,
		PushedAt:   now,
	}))

	results := gt.R1(repo.ListResults(ctx)).NoError(t)
	idxA, a := find(results, repoA)
	idxB, b := find(results, repoB)
	gt.V(t, a).NotEqual(nil)
	gt.V(t, b).NotEqual(nil)
	gt.True(t, a.Success)
	gt.False(t, b.Success)
	gt.V(t, b.Category).Equal(types.ErrorCategoryForbidden)

	// repoA was stored first
	gt.True(t, idxA < idxB)
}

func TestOverwrite(t *testing.T, repo interfaces.StatusRepository) {
	ctx := context.Background()
	name := newRepoName()

	gt.NoError(t, repo.PutResult(ctx, &model.PushResult{Repository: name, Success: false, StatusCode: 500}))
	gt.NoError(t, repo.PutResult(ctx, &model.PushResult{Repository: name, Success: true}))

	results := gt.R1(repo.ListResults(ctx)).NoError(t)
	_, got := find(results, name)
	gt.V(t, got).NotEqual(nil)
	gt.True(t, got.Success)
	gt.V(t, got.StatusCode).Equal(0)

	// returned values are copies
	got.Success = false
	results = gt.R1(repo.ListResults(ctx)).NoError(t)
	_, again := find(results, name)
	gt.True(t, again.Success)
}

func TestInvalidInput(t *testing.T, repo interfaces.StatusRepository) {
	ctx := context.Background()

	err := repo.PutResult(ctx, nil)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrInvalidInput))

	err = repo.PutResult(ctx, &model.PushResult{})
	gt.Error(t, err)
}
