package model

import (
	"time"

	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

// PushResult is the outcome of one push attempt to one repository.
type PushResult struct {
	Repository    string              `json:"repository"`
	CycleID       types.CycleID       `json:"cycle_id"`
	Success       bool                `json:"success"`
	Created       bool                `json:"created"`
	StatusCode    int                 `json:"status_code,omitempty"`
	Category      types.ErrorCategory `json:"category,omitempty"`
	Message       string              `json:"message,omitempty"`
	CommitMessage string              `json:"commit_message"`
	PushedAt      time.Time           `json:"pushed_at"`
}
