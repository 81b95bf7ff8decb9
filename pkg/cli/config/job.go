package config

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/cli/prompt"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// PushJob collects what to push, where and how often
type PushJob struct {
	mode           string
	repo           string
	repoNames      string
	filePath       string
	remotePath     string
	fileContent    string
	commitTemplate string
	delay          int64
}

func (x *PushJob) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repo-mode",
			Usage:       "Repository mode [single|multi]",
			Category:    "Push",
			Destination: &x.mode,
			Sources:     cli.EnvVars("PUSHLOOP_REPO_MODE", "REPO_MODE"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Repository name without owner (single mode)",
			Category:    "Push",
			Destination: &x.repo,
			Sources:     cli.EnvVars("PUSHLOOP_GITHUB_REPO", "GITHUB_REPO"),
		},
		&cli.StringFlag{
			Name:        "repo-names",
			Usage:       "Comma separated repository names without owner (multi mode)",
			Category:    "Push",
			Destination: &x.repoNames,
			Sources:     cli.EnvVars("PUSHLOOP_REPO_NAMES", "REPO_NAMES"),
		},
		&cli.StringFlag{
			Name:        "file-path",
			Usage:       "Local file to rewrite and push",
			Category:    "Push",
			Destination: &x.filePath,
			Value:       model.DefaultFilePath,
			Sources:     cli.EnvVars("PUSHLOOP_FILE_PATH", "FILE_PATH"),
		},
		&cli.StringFlag{
			Name:        "remote-path",
			Usage:       "Path of the file in the repository. Derived from --file-path if empty",
			Category:    "Push",
			Destination: &x.remotePath,
			Sources:     cli.EnvVars("PUSHLOOP_REMOTE_PATH"),
		},
		&cli.StringFlag{
			Name:        "file-content",
			Usage:       "File content template. {timestamp} is replaced with the current time",
			Category:    "Push",
			Destination: &x.fileContent,
			Value:       model.DefaultFileContent,
			Sources:     cli.EnvVars("PUSHLOOP_FILE_CONTENT", "FILE_CONTENT"),
		},
		&cli.StringFlag{
			Name:        "commit-message",
			Usage:       "Commit message template. {date} is replaced with the current time",
			Category:    "Push",
			Destination: &x.commitTemplate,
			Value:       model.DefaultCommitTemplate,
			Sources:     cli.EnvVars("PUSHLOOP_COMMIT_MESSAGE_TEMPLATE", "COMMIT_MESSAGE_TEMPLATE"),
		},
		&cli.Int64Flag{
			Name:        "delay",
			Usage:       "Seconds between push cycles (1-86400)",
			Category:    "Push",
			Destination: &x.delay,
			Sources:     cli.EnvVars("PUSHLOOP_DELAY_SECONDS", "DELAY_SECONDS"),
		},
	}
}

// Prompt asks for the mode, repositories and delay that were not given
func (x *PushJob) Prompt(p *prompt.Prompter) error {
	if !types.RepoMode(x.normalizedMode()).Valid() {
		mode, err := p.Select("Choose repository mode", []string{
			string(types.RepoModeSingle),
			string(types.RepoModeMulti),
		})
		if err != nil {
			return err
		}
		x.mode = mode
	}

	switch types.RepoMode(x.normalizedMode()) {
	case types.RepoModeSingle:
		if x.repo == "" {
			repo, err := p.Input("Enter repository name (without username)", "", validateRepoInput)
			if err != nil {
				return err
			}
			x.repo = repo
		}

	case types.RepoModeMulti:
		if len(ParseRepoNames(x.repoNames)) == 0 {
			names, err := p.Input("Enter repository names separated by commas", "", func(input string) string {
				repos := ParseRepoNames(input)
				if len(repos) == 0 {
					return "Enter at least one repository name"
				}
				for _, repo := range repos {
					if msg := validateRepoInput(string(repo)); msg != "" {
						return msg
					}
				}
				return ""
			})
			if err != nil {
				return err
			}
			x.repoNames = names
		}
	}

	if x.delay == 0 {
		delay, err := p.Input("Enter delay between pushes in seconds", "", func(input string) string {
			n, err := strconv.ParseInt(input, 10, 64)
			if err != nil {
				return "Delay must be a number"
			}
			if err := model.ValidateDelay(n); err != nil {
				return err.Error()
			}
			return ""
		})
		if err != nil {
			return err
		}
		// validated above
		x.delay, _ = strconv.ParseInt(delay, 10, 64)
	}

	return nil
}

func validateRepoInput(input string) string {
	if err := model.ValidateRepoName(types.RepoName(input)); err != nil {
		return err.Error()
	}
	return ""
}

func (x *PushJob) normalizedMode() string {
	return strings.ToLower(strings.TrimSpace(x.mode))
}

// ParseRepoNames splits a comma separated list. Names are trimmed and empty entries dropped.
func ParseRepoNames(s string) []types.RepoName {
	var names []types.RepoName
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, types.RepoName(name))
		}
	}
	return names
}

func (x *PushJob) repositories() ([]types.RepoName, error) {
	switch mode := types.RepoMode(x.normalizedMode()); mode {
	case types.RepoModeSingle:
		repo := strings.TrimSpace(x.repo)
		if repo == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "repository name not provided for single mode")
		}
		return []types.RepoName{types.RepoName(repo)}, nil

	case types.RepoModeMulti:
		if strings.TrimSpace(x.repoNames) == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "repository names not provided for multi mode")
		}
		return ParseRepoNames(x.repoNames), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid repository mode, must be either single or multi",
			goerr.V("mode", x.mode))
	}
}

// Build validates the collected values and returns an immutable job
func (x *PushJob) Build(token types.GitHubToken, username types.GitHubLogin) (*model.PushJob, error) {
	repos, err := x.repositories()
	if err != nil {
		return nil, err
	}

	return model.NewPushJob(model.PushJobInput{
		Token:    token,
		Identity: username,
		Repos:    repos,
		File: model.FileTarget{
			LocalPath:  x.filePath,
			RemotePath: x.remotePath,
			Template:   x.fileContent,
		},
		CommitTemplate: x.commitTemplate,
		DelaySeconds:   x.delay,
	})
}

func (x *PushJob) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("Mode", x.mode),
		slog.Any("Repo", x.repo),
		slog.Any("RepoNames", x.repoNames),
		slog.Any("FilePath", x.filePath),
		slog.Any("RemotePath", x.remotePath),
		slog.Any("CommitTemplate", x.commitTemplate),
		slog.Int64("Delay", x.delay),
	)
}
