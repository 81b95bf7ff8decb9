package config_test

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/cli/config"
	"github.com/secmon-lab/pushloop/pkg/cli/prompt"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

func unsetEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		gt.NoError(t, os.Unsetenv(key))
	}
}

func TestGitHub(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(),
			"--github-token", "ghp_test",
			"--github-username", "Alice",
			"--http-timeout", "5s",
		)
		gt.V(t, cfg.Token()).Equal(types.GitHubToken("ghp_test"))
		gt.V(t, cfg.Username()).Equal(types.GitHubLogin("Alice"))

		client, err := cfg.NewClient()
		gt.NoError(t, err)
		gt.V(t, client).NotEqual(nil)
	})

	t.Run("token from original environment variable", func(t *testing.T) {
		unsetEnv(t, "PUSHLOOP_GITHUB_TOKEN")
		t.Setenv("GITHUB_TOKEN", "ghp_from_env")

		var cfg config.GitHub
		parseFlags(t, cfg.Flags())
		gt.V(t, cfg.Token()).Equal(types.GitHubToken("ghp_from_env"))
	})

	t.Run("prompt for missing token", func(t *testing.T) {
		unsetEnv(t, "PUSHLOOP_GITHUB_TOKEN", "GITHUB_TOKEN")

		var cfg config.GitHub
		parseFlags(t, cfg.Flags())

		out := &bytes.Buffer{}
		gt.NoError(t, cfg.Prompt(prompt.New(strings.NewReader("\nghp_typed\n"), out)))
		gt.V(t, cfg.Token()).Equal(types.GitHubToken("ghp_typed"))
		gt.S(t, out.String()).Contains("GitHub token is required")
	})

	t.Run("client requires token", func(t *testing.T) {
		unsetEnv(t, "PUSHLOOP_GITHUB_TOKEN", "GITHUB_TOKEN")

		var cfg config.GitHub
		parseFlags(t, cfg.Flags())
		_, err := cfg.NewClient()
		gt.Error(t, err)
	})

	t.Run("token is masked in logs", func(t *testing.T) {
		var cfg config.GitHub
		parseFlags(t, cfg.Flags(), "--github-token", "ghp_secret_value", "--http-timeout", time.Minute.String())
		gt.False(t, strings.Contains(cfg.LogValue().String(), "ghp_secret_value"))
	})
}
