package model

import "github.com/secmon-lab/pushloop/pkg/domain/types"

// CommitRecord is built fresh for every push and never stored.
type CommitRecord struct {
	Message string
	Author  types.GitHubLogin
	Email   string
}

func NewCommitRecord(message string, author types.GitHubLogin) CommitRecord {
	return CommitRecord{
		Message: message,
		Author:  author,
		Email:   author.NoReplyEmail(),
	}
}

// Identity is the account resolved from a credential.
type Identity struct {
	Login         types.GitHubLogin
	Scopes        string
	RateRemaining int
}
