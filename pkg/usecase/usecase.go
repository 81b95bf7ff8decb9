package usecase

import (
	"context"
	"time"

	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/infra"
)

// WaitFunc blocks for d or until ctx is done
type WaitFunc func(ctx context.Context, d time.Duration) error

type UseCase struct {
	clients *infra.Clients
	wait    WaitFunc
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithWaitFunc replaces the sleep between push cycles
func WithWaitFunc(f WaitFunc) Option {
	return func(x *UseCase) {
		x.wait = f
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients: clients,
		wait:    waitContext,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}

func waitContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
