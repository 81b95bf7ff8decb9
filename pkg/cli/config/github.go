package config

import (
	"log/slog"
	"time"

	"github.com/secmon-lab/pushloop/pkg/cli/prompt"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/infra/ghapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token    string
	username string
	apiURL   string
	timeout  time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub personal access token with repo scope",
			Category:    "GitHub",
			Destination: &x.token,
			Sources:     cli.EnvVars("PUSHLOOP_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-username",
			Usage:       "GitHub username. The account that owns the token is used if it differs",
			Category:    "GitHub",
			Destination: &x.username,
			Sources:     cli.EnvVars("PUSHLOOP_GITHUB_USERNAME", "GITHUB_USERNAME"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("PUSHLOOP_GITHUB_API_URL"),
		},
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Timeout of each GitHub API request",
			Category:    "GitHub",
			Destination: &x.timeout,
			Value:       ghapi.DefaultTimeout,
			Sources:     cli.EnvVars("PUSHLOOP_HTTP_TIMEOUT"),
		},
	}
}

// Prompt asks for the token if it was not given
func (x *GitHub) Prompt(p *prompt.Prompter) error {
	if x.token != "" {
		return nil
	}

	token, err := p.Secret("Enter your GitHub token", prompt.Required("GitHub token is required"))
	if err != nil {
		return err
	}
	x.token = token
	return nil
}

func (x *GitHub) Token() types.GitHubToken {
	return types.GitHubToken(x.token)
}

func (x *GitHub) Username() types.GitHubLogin {
	return types.GitHubLogin(x.username)
}

func (x *GitHub) NewClient() (*ghapi.Client, error) {
	options := []ghapi.Option{
		ghapi.WithTimeout(x.timeout),
	}
	if x.apiURL != "" {
		options = append(options, ghapi.WithBaseURL(x.apiURL))
	}

	return ghapi.New(x.Token(), options...)
}

func (x *GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Token", x.Token()),
		slog.Any("Username", x.username),
		slog.Any("APIURL", x.apiURL),
		slog.Duration("Timeout", x.timeout),
	)
}
