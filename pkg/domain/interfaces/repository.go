package interfaces

import (
	"context"

	"github.com/secmon-lab/pushloop/pkg/domain/model"
)

// StatusRepository keeps the latest push result of each repository
type StatusRepository interface {
	PutResult(ctx context.Context, result *model.PushResult) error
	ListResults(ctx context.Context) ([]*model.PushResult, error)
}
