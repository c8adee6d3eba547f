package workflow

import "errors"

// Stage identifies one step of the production pipeline.
type Stage int

const (
	StageExtract Stage = iota + 1
	StageTranscribe
	StageCorrect
	StageTranslate

	stageCount = 4
)

func (s Stage) String() string {
	switch s {
	case StageExtract:
		return "extract"
	case StageTranscribe:
		return "transcribe"
	case StageCorrect:
		return "correct"
	case StageTranslate:
		return "translate"
	}
	return "unknown"
}

// ErrBusy is returned by Begin when another job is already running. Jobs are
// never queued; the caller retries once the active job finishes.
var ErrBusy = errors.New("another job is already running")

// StageState is the progress record for a single stage.
type StageState struct {
	Done     bool   `json:"done"`
	Artifact string `json:"artifact,omitempty"`
}

// Snapshot is an immutable view of the whole workflow, published to the state
// store after every change.
type Snapshot struct {
	Current Stage                `json:"current"`
	Busy    bool                 `json:"busy"`
	Stages  map[Stage]StageState `json:"stages"`
}

// Workflow tracks which stages of a project are complete and guards stage
// ordering. It holds no project data itself; artifacts are paths into the
// project directory.
type Workflow interface {
	// Snapshot returns a copy of the current state.
	Snapshot() Snapshot

	// CanEnter reports whether a stage may run now. Stage 1 is always
	// enterable; stage N requires N-1 to be complete.
	CanEnter(stage Stage) bool

	// Complete marks a stage done, records its artifact, and advances the
	// current stage. Fails when the stage's predecessor is not complete.
	Complete(stage Stage, artifact string) error

	// EnterAt jumps into the pipeline at stage 3 or 4 with an externally
	// supplied artifact, marking the bypassed stages satisfied.
	EnterAt(stage Stage, artifact string) error

	// Artifact returns the recorded artifact path for a completed stage.
	Artifact(stage Stage) string

	// Reset returns the workflow to stage 1 with all progress cleared.
	Reset()

	// Restore replaces the workflow state with a previously saved snapshot.
	// The busy flag is not restored; jobs do not survive a restart.
	Restore(snap Snapshot)

	// Begin claims the single job slot. It fails fast with ErrBusy when a
	// job is already running. The returned release func must be called when
	// the job ends, success or not.
	Begin() (release func(), err error)
}
