package memory

import "github.com/secmon-lab/pushloop/pkg/domain/interfaces"

// New creates a new in-memory status repository
func New() interfaces.StatusRepository {
	return &statusRepository{
		results: make(map[string]*resultData),
	}
}
