package usecase

import (
	"context"
	"log/slog"

	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
)

// ValidateCredential resolves the account that owns the token. The returned
// login always comes from GitHub; claimed is only compared against it.
// Only the identity lookup can fail validation. A failed rate limit lookup
// is logged as a warning and RateRemaining stays zero.
func (x *UseCase) ValidateCredential(ctx context.Context, claimed types.GitHubLogin) (*model.Identity, error) {
	gh, err := x.github()
	if err != nil {
		return nil, err
	}
	logger := logging.From(ctx)
	logger.Info("Validating GitHub token")

	identity, err := gh.GetAuthenticatedUser(ctx)
	if err != nil {
		attrs := []any{slog.Any("error", err)}
		if apiErr, ok := model.AsAPIError(err); ok {
			attrs = append(attrs,
				slog.Int("status", apiErr.StatusCode),
				slog.String("message", apiErr.Message),
			)
		}
		logger.Error("Failed to validate GitHub token", attrs...)
		return nil, classify(types.ErrInvalidCredential, err, "failed to validate GitHub token")
	}

	scopes := identity.Scopes
	if scopes == "" {
		scopes = "no scopes"
	}
	logger.Info("Token connected to account",
		slog.Any("login", identity.Login),
		slog.String("scopes", scopes),
	)

	if remaining, err := gh.GetRateRemaining(ctx); err != nil {
		logger.Warn("Failed to get rate limit", slog.Any("error", err))
	} else {
		identity.RateRemaining = remaining
		logger.Info("Rate limit remaining", slog.Int("remaining", remaining))
	}

	if claimed != "" && !claimed.EqualFold(identity.Login) {
		logger.Warn("GitHub username does not match token, proceeding with username from token",
			slog.Any("token_owner", identity.Login),
			slog.Any("provided", claimed),
		)
	}

	return identity, nil
}
