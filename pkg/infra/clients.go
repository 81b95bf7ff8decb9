package infra

import (
	"github.com/secmon-lab/pushloop/pkg/domain/interfaces"
	"github.com/secmon-lab/pushloop/pkg/infra/localfile"
	"github.com/secmon-lab/pushloop/pkg/repository/memory"
)

type Clients struct {
	github           interfaces.GitHub
	localFile        interfaces.LocalFile
	statusRepository interfaces.StatusRepository
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		localFile:        localfile.New(),
		statusRepository: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) LocalFile() interfaces.LocalFile {
	return x.localFile
}
func (x *Clients) StatusRepository() interfaces.StatusRepository {
	return x.statusRepository
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithLocalFile(client interfaces.LocalFile) Option {
	return func(x *Clients) {
		x.localFile = client
	}
}

func WithStatusRepository(repo interfaces.StatusRepository) Option {
	return func(x *Clients) {
		x.statusRepository = repo
	}
}
