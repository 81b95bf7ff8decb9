package usecase

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

// classify keeps both kind and cause reachable by errors.Is and errors.As
func classify(kind, cause error, msg string, options ...goerr.Option) error {
	return goerr.Wrap(fmt.Errorf("%w: %w", kind, cause), msg, options...)
}

func (x *UseCase) github() (interfaces.GitHub, error) {
	gh := x.clients.GitHub()
	if gh == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	return gh, nil
}
