package errutil

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
)

// HandleError logs err and sends it to Sentry. GitHub API status and
// category are attached as tags so failures can be grouped by cause.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	attrs := []any{slog.Any("error", err)}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
		if apiErr, ok := model.AsAPIError(err); ok {
			scope.SetTag("github.status", fmt.Sprintf("%d", apiErr.StatusCode))
			scope.SetTag("github.category", string(apiErr.Category()))
			attrs = append(attrs,
				slog.Int("status", apiErr.StatusCode),
				slog.String("category", string(apiErr.Category())),
			)
		}
	})
	evID := hub.CaptureException(err)

	attrs = append(attrs, slog.Any("sentry.EventID", evID))
	logging.From(ctx).Error(msg, attrs...)
}
