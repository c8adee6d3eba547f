package project

import (
	"github.com/slidecast/slidecast/internal/logger"
)

type implStore struct {
	root   string
	logger logger.Logger
}

// New creates a Store rooted at the given projects directory.
func New(root string, log logger.Logger) Store {
	return &implStore{
		root:   root,
		logger: log,
	}
}
