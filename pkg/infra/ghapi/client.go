package ghapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/utils/logging"
	"golang.org/x/oauth2"
)

const DefaultTimeout = 30 * time.Second

type Client struct {
	gh *github.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	timeout   time.Duration
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL points the client at a GitHub Enterprise or test server
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		cfg.timeout = d
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func New(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	cfg := &config{
		timeout:   DefaultTimeout,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: ts, Base: cfg.transport},
		Timeout:   cfg.timeout,
	}
	gh := github.NewClient(httpClient)

	if cfg.baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(cfg.baseURL, "/") + "/")
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API base URL", goerr.V("url", cfg.baseURL))
		}
		gh.BaseURL = u
	}

	return &Client{gh: gh}, nil
}

func (x *Client) GetAuthenticatedUser(ctx context.Context) (*model.Identity, error) {
	user, resp, err := x.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, goerr.Wrap(toAPIError(resp, err), "failed to get authenticated user")
	}
	if user.GetLogin() == "" {
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "login is empty in user response")
	}

	return &model.Identity{
		Login:  types.GitHubLogin(user.GetLogin()),
		Scopes: resp.Header.Get("X-OAuth-Scopes"),
	}, nil
}

func (x *Client) GetRateRemaining(ctx context.Context) (int, error) {
	limits, resp, err := x.gh.RateLimits(ctx)
	if err != nil {
		return 0, goerr.Wrap(toAPIError(resp, err), "failed to get rate limit")
	}
	if limits == nil || limits.Core == nil {
		return 0, goerr.Wrap(types.ErrInvalidGitHubData, "core rate limit is missing")
	}
	return limits.Core.Remaining, nil
}

func (x *Client) CanPush(ctx context.Context, repo model.RepositoryTarget) (bool, error) {
	r, resp, err := x.gh.Repositories.Get(ctx, string(repo.Owner), string(repo.Name))
	if err != nil {
		return false, goerr.Wrap(toAPIError(resp, err), "failed to get repository",
			goerr.V("repo", repo.FullName()),
		)
	}
	return r.Permissions["push"], nil
}

func (x *Client) GetFileSHA(ctx context.Context, repo model.RepositoryTarget, path string) (types.FileSHA, bool) {
	logger := logging.From(ctx).With(
		slog.String("repo", repo.FullName()),
		slog.String("path", path),
	)

	file, _, resp, err := x.gh.Repositories.GetContents(ctx, string(repo.Owner), string(repo.Name), path, nil)
	if err != nil {
		apiErr := toAPIError(resp, err)
		switch apiErr.Category() {
		case types.ErrorCategoryNotFound:
			logger.Debug("file does not exist yet")
		case types.ErrorCategoryForbidden:
			logger.Error("access denied while trying to get file SHA",
				slog.String("message", apiErr.Message),
			)
		default:
			logger.Warn("failed to get file SHA, trying to create the file",
				slog.Int("status", apiErr.StatusCode),
				slog.String("message", apiErr.Message),
			)
		}
		return "", false
	}

	if file == nil || file.GetSHA() == "" {
		logger.Warn("path is not a file, trying to create it")
		return "", false
	}

	return types.FileSHA(file.GetSHA()), true
}

func (x *Client) PutFile(ctx context.Context, input *interfaces.PutFileInput) error {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(input.Commit.Message),
		Content: input.Content,
		Committer: &github.CommitAuthor{
			Name:  github.String(string(input.Commit.Author)),
			Email: github.String(input.Commit.Email),
		},
	}

	owner, name := string(input.Repo.Owner), string(input.Repo.Name)

	var (
		resp *github.Response
		err  error
	)
	if input.SHA != "" {
		opts.SHA = github.String(string(input.SHA))
		_, resp, err = x.gh.Repositories.UpdateFile(ctx, owner, name, input.Path, opts)
	} else {
		_, resp, err = x.gh.Repositories.CreateFile(ctx, owner, name, input.Path, opts)
	}

	if err != nil {
		return goerr.Wrap(toAPIError(resp, err), "failed to put file",
			goerr.V("repo", input.Repo.FullName()),
			goerr.V("path", input.Path),
		)
	}

	return nil
}

func toAPIError(resp *github.Response, err error) *model.APIError {
	apiErr := &model.APIError{Message: err.Error()}

	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Message != "" {
		apiErr.Message = ghErr.Message
	}

	if resp != nil && resp.Response != nil {
		apiErr.StatusCode = resp.StatusCode
		if resp.Request != nil && resp.Request.URL != nil {
			apiErr.URL = resp.Request.URL.String()
		}
	}

	return apiErr
}
