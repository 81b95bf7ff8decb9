package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/repository"
)

type resultData struct {
	seq    int
	result *model.PushResult
}

type statusRepository struct {
	mu      sync.RWMutex
	seq     int
	results map[string]*resultData
}

func (r *statusRepository) PutResult(ctx context.Context, result *model.PushResult) error {
	if result == nil || result.Repository == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "push result requires repository")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if data, exists := r.results[result.Repository]; exists {
		data.result = copyResult(result)
		return nil
	}

	r.seq++
	r.results[result.Repository] = &resultData{
		seq:    r.seq,
		result: copyResult(result),
	}
	return nil
}

// ListResults returns results in the order repositories were first seen
func (r *statusRepository) ListResults(ctx context.Context) ([]*model.PushResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data := make([]*resultData, 0, len(r.results))
	for _, d := range r.results {
		data = append(data, d)
	}
	sort.Slice(data, func(i, j int) bool { return data[i].seq < data[j].seq })

	results := make([]*model.PushResult, len(data))
	for i, d := range data {
		results[i] = copyResult(d.result)
	}
	return results, nil
}

func copyResult(src *model.PushResult) *model.PushResult {
	dst := *src
	return &dst
}
