package workflow

import (
	"sync"

	"github.com/slidecast/slidecast/internal/logger"
	"github.com/slidecast/slidecast/internal/state"
)

type implWorkflow struct {
	mu      sync.Mutex
	current Stage
	stages  [stageCount]StageState
	busy    bool

	states *state.Store
	logger logger.Logger
}

// New creates a workflow at stage 1 with no progress.
func New(states *state.Store, log logger.Logger) Workflow {
	w := &implWorkflow{
		current: StageExtract,
		states:  states,
		logger:  log,
	}
	w.publish()
	return w
}
