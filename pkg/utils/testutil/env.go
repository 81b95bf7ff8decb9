package testutil

import (
	"os"
	"testing"

	"github.com/secmon-lab/pushloop/pkg/domain/types"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// GitHubTarget returns the token and repository used by integration tests.
// The token owner must be able to push to the repository.
func GitHubTarget(t *testing.T) (types.GitHubToken, types.RepoName) {
	t.Helper()
	token := GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")
	repo := GetEnvOrSkip(t, "TEST_GITHUB_REPO")
	return types.GitHubToken(token), types.RepoName(repo)
}
