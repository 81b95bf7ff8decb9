package types

import (
	"log/slog"
	"strings"
)

type (
	GitHubToken string
	GitHubLogin string
	RepoName    string
	FileSHA     string
	RepoMode    string
)

const (
	RepoModeSingle RepoMode = "single"
	RepoModeMulti  RepoMode = "multi"
)

func (x RepoMode) Valid() bool {
	return x == RepoModeSingle || x == RepoModeMulti
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

// EqualFold reports whether two logins name the same account. GitHub logins are case-insensitive.
func (x GitHubLogin) EqualFold(other GitHubLogin) bool {
	return strings.EqualFold(string(x), string(other))
}

// NoReplyEmail returns the GitHub no-reply address for the login.
func (x GitHubLogin) NoReplyEmail() string {
	return string(x) + "@users.noreply.github.com"
}
