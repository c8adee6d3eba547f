package workflow

import (
	"context"
	"fmt"

	"github.com/slidecast/slidecast/internal/state"
)

func (w *implWorkflow) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *implWorkflow) snapshotLocked() Snapshot {
	stages := make(map[Stage]StageState, stageCount)
	for i, st := range w.stages {
		stages[Stage(i+1)] = st
	}
	return Snapshot{
		Current: w.current,
		Busy:    w.busy,
		Stages:  stages,
	}
}

// publish pushes the current snapshot to the state store. Called with the
// lock NOT held; subscriber callbacks may call back into the workflow.
func (w *implWorkflow) publish() {
	w.states.Set(state.KeyWorkflow, w.Snapshot())
}

func (w *implWorkflow) CanEnter(stage Stage) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.canEnterLocked(stage)
}

func (w *implWorkflow) canEnterLocked(stage Stage) bool {
	if stage < StageExtract || stage > StageTranslate {
		return false
	}
	if stage == StageExtract {
		return true
	}
	return w.stages[stage-2].Done
}

func (w *implWorkflow) Complete(stage Stage, artifact string) error {
	w.mu.Lock()
	if !w.canEnterLocked(stage) {
		w.mu.Unlock()
		return fmt.Errorf("stage %s cannot complete: %s is not done", stage, stage-1)
	}

	w.stages[stage-1] = StageState{Done: true, Artifact: artifact}
	if stage < StageTranslate {
		w.current = stage + 1
	} else {
		w.current = StageTranslate
	}
	w.mu.Unlock()

	w.logger.Info(context.Background(), "Stage %s complete, artifact: %s", stage, artifact)
	w.publish()
	return nil
}

func (w *implWorkflow) EnterAt(stage Stage, artifact string) error {
	if stage != StageCorrect && stage != StageTranslate {
		return fmt.Errorf("cannot enter workflow at stage %s; only %s or %s", stage, StageCorrect, StageTranslate)
	}

	w.mu.Lock()
	for s := StageExtract; s < stage; s++ {
		w.stages[s-1].Done = true
	}
	// The supplied artifact stands in for the predecessor's output.
	w.stages[stage-2].Artifact = artifact
	w.current = stage
	w.mu.Unlock()

	w.logger.Info(context.Background(), "Entered workflow at stage %s with %s", stage, artifact)
	w.publish()
	return nil
}

func (w *implWorkflow) Artifact(stage Stage) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if stage < StageExtract || stage > StageTranslate {
		return ""
	}
	return w.stages[stage-1].Artifact
}

func (w *implWorkflow) Reset() {
	w.mu.Lock()
	w.current = StageExtract
	w.stages = [stageCount]StageState{}
	// busy is left alone: it tracks a live job, not stage progress, and is
	// cleared only by that job's release func.
	w.mu.Unlock()

	w.logger.Info(context.Background(), "Workflow reset to stage %s", StageExtract)
	w.publish()
}

func (w *implWorkflow) Restore(snap Snapshot) {
	w.mu.Lock()
	w.current = snap.Current
	if w.current < StageExtract || w.current > StageTranslate {
		w.current = StageExtract
	}
	w.stages = [stageCount]StageState{}
	for s, st := range snap.Stages {
		if s >= StageExtract && s <= StageTranslate {
			w.stages[s-1] = st
		}
	}
	w.mu.Unlock()

	w.publish()
}

func (w *implWorkflow) Begin() (func(), error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, ErrBusy
	}
	w.busy = true
	w.mu.Unlock()
	w.publish()

	return func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
		w.publish()
	}, nil
}
