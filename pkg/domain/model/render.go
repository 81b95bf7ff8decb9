package model

import (
	"strings"
	"time"
)

const (
	TimestampPlaceholder = "{timestamp}"
	DatePlaceholder      = "{date}"

	// MM/DD/YYYY, hh:mm:ss AM in UTC, all fields zero padded
	TimestampLayout = "01/02/2006, 03:04:05 PM"
)

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// RenderFileContent replaces every {timestamp} in template.
func RenderFileContent(template string, now time.Time) string {
	return strings.ReplaceAll(template, TimestampPlaceholder, FormatTimestamp(now))
}

// RenderCommitMessage replaces every {date} in template.
func RenderCommitMessage(template string, now time.Time) string {
	return strings.ReplaceAll(template, DatePlaceholder, FormatTimestamp(now))
}
