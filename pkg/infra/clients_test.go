package infra_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/domain/mock"
	"github.com/secmon-lab/pushloop/pkg/infra"
	"github.com/secmon-lab/pushloop/pkg/repository/memory"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		// GitHub requires a token and is nil without configuration
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.LocalFile()).NotEqual(nil)
		gt.V(t, clients.StatusRepository()).NotEqual(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithLocalFile option sets local file client", func(t *testing.T) {
		mockFile := &mock.LocalFileMock{}
		clients := infra.New(infra.WithLocalFile(mockFile))
		gt.V(t, clients.LocalFile()).Equal(mockFile)
	})

	t.Run("multiple options can be combined", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		mockFile := &mock.LocalFileMock{}
		repo := memory.New()

		clients := infra.New(
			infra.WithGitHub(mockGH),
			infra.WithLocalFile(mockFile),
			infra.WithStatusRepository(repo),
		)

		gt.V(t, clients.GitHub()).Equal(mockGH)
		gt.V(t, clients.LocalFile()).Equal(mockFile)
		gt.V(t, clients.StatusRepository()).Equal(repo)
	})
}
