package model

import (
	"path"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

const (
	MinDelaySeconds = 1
	MaxDelaySeconds = 86400

	DefaultFilePath       = "auto-push.md"
	DefaultFileContent    = "# Auto Push File\n\nContent that will be pushed to GitHub repository.\nLast updated: {timestamp}"
	DefaultCommitTemplate = "🤖 Auto Push Update {date}"
)

// RepositoryTarget is a repository that receives the file on every cycle.
type RepositoryTarget struct {
	Owner types.GitHubLogin
	Name  types.RepoName
}

func (x RepositoryTarget) FullName() string {
	return string(x.Owner) + "/" + string(x.Name)
}

func (x RepositoryTarget) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository owner is empty")
	}
	return ValidateRepoName(x.Name)
}

// ValidateRepoName checks a repository name given without its owner.
func ValidateRepoName(name types.RepoName) error {
	switch {
	case name == "":
		return goerr.Wrap(types.ErrValidationFailed, "repository name is required")
	case strings.HasSuffix(string(name), ".md"):
		return goerr.Wrap(types.ErrValidationFailed, "repository name cannot end with .md", goerr.V("name", name))
	case strings.Contains(string(name), "/"):
		return goerr.Wrap(types.ErrValidationFailed, "enter repository name without username", goerr.V("name", name))
	}
	return nil
}

// FileTarget describes the local file and where it lands in each repository.
type FileTarget struct {
	LocalPath  string
	RemotePath string
	Template   string
}

// RemotePathOf derives the repository path from a local path.
func RemotePathOf(localPath string) string {
	p := path.Clean(strings.ReplaceAll(localPath, "\\", "/"))
	return strings.TrimLeft(strings.TrimPrefix(p, "./"), "/")
}

// ValidateRemotePath rejects repository paths that the contents API would
// resolve to another file: parent segments and characters that end or escape
// the URL path.
func ValidateRemotePath(p string) error {
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return goerr.Wrap(types.ErrValidationFailed, "remote file path must not contain '..'", goerr.V("path", p))
		}
	}
	if strings.ContainsAny(p, "#?%") {
		return goerr.Wrap(types.ErrValidationFailed, "remote file path must not contain '#', '?' or '%'", goerr.V("path", p))
	}
	return nil
}

// PushJob is the validated, immutable description of a recurring push task.
type PushJob struct {
	token          types.GitHubToken
	identity       types.GitHubLogin
	repos          []types.RepoName
	file           FileTarget
	commitTemplate string
	delay          time.Duration
}

type PushJobInput struct {
	Token          types.GitHubToken
	Identity       types.GitHubLogin
	Repos          []types.RepoName
	File           FileTarget
	CommitTemplate string
	DelaySeconds   int64
}

// ValidateDelay checks that seconds is within [MinDelaySeconds, MaxDelaySeconds].
func ValidateDelay(seconds int64) error {
	if seconds < MinDelaySeconds {
		return goerr.Wrap(types.ErrValidationFailed, "delay must be greater than 0", goerr.V("delay", seconds))
	}
	if seconds > MaxDelaySeconds {
		return goerr.Wrap(types.ErrValidationFailed, "maximum delay is 86400 seconds (24 hours)", goerr.V("delay", seconds))
	}
	return nil
}

func NewPushJob(input PushJobInput) (*PushJob, error) {
	if input.Token == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "GitHub token is required")
	}
	if len(input.Repos) == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no valid repository names provided")
	}
	for _, name := range input.Repos {
		if err := ValidateRepoName(name); err != nil {
			return nil, err
		}
	}
	if input.File.LocalPath == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "file path is required")
	}
	if input.File.Template == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "file content is required")
	}
	if input.CommitTemplate == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "commit message template is required")
	}
	if err := ValidateDelay(input.DelaySeconds); err != nil {
		return nil, err
	}

	file := input.File
	if file.RemotePath == "" {
		file.RemotePath = RemotePathOf(file.LocalPath)
	}
	if file.RemotePath == "" || file.RemotePath == "." {
		return nil, goerr.Wrap(types.ErrValidationFailed, "remote file path is empty", goerr.V("local", file.LocalPath))
	}
	if err := ValidateRemotePath(file.RemotePath); err != nil {
		return nil, err
	}

	return &PushJob{
		token:          input.Token,
		identity:       input.Identity,
		repos:          append([]types.RepoName{}, input.Repos...),
		file:           file,
		commitTemplate: input.CommitTemplate,
		delay:          time.Duration(input.DelaySeconds) * time.Second,
	}, nil
}

// WithIdentity returns a copy of the job bound to the resolved account.
func (x *PushJob) WithIdentity(identity types.GitHubLogin) *PushJob {
	newJob := *x
	newJob.identity = identity
	newJob.repos = append([]types.RepoName{}, x.repos...)
	return &newJob
}

func (x *PushJob) Token() types.GitHubToken    { return x.token }
func (x *PushJob) Identity() types.GitHubLogin { return x.identity }
func (x *PushJob) File() FileTarget            { return x.file }
func (x *PushJob) CommitTemplate() string      { return x.commitTemplate }
func (x *PushJob) Delay() time.Duration        { return x.delay }

// Targets returns repositories in configured order, owned by the job identity.
func (x *PushJob) Targets() []RepositoryTarget {
	targets := make([]RepositoryTarget, len(x.repos))
	for i, name := range x.repos {
		targets[i] = RepositoryTarget{Owner: x.identity, Name: name}
	}
	return targets
}
