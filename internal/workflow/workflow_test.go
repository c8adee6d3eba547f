package workflow

import (
	"testing"

	"github.com/slidecast/slidecast/internal/logger"
	"github.com/slidecast/slidecast/internal/state"
)

func newTestWorkflow() (Workflow, *state.Store) {
	states := state.New()
	return New(states, logger.New("error")), states
}

func TestStageGating(t *testing.T) {
	w, _ := newTestWorkflow()

	if !w.CanEnter(StageExtract) {
		t.Error("stage 1 must always be enterable")
	}
	for _, s := range []Stage{StageTranscribe, StageCorrect, StageTranslate} {
		if w.CanEnter(s) {
			t.Errorf("stage %s enterable before %s is done", s, s-1)
		}
	}

	if err := w.Complete(StageExtract, "files/audio.wav"); err != nil {
		t.Fatalf("Complete() error = %v", err)
	}

	if !w.CanEnter(StageTranscribe) {
		t.Error("stage 2 should be enterable after stage 1 completes")
	}
	if w.CanEnter(StageCorrect) {
		t.Error("stage 3 should not be enterable after only stage 1")
	}
}

func TestCompleteAdvances(t *testing.T) {
	w, _ := newTestWorkflow()

	artifacts := []string{"audio.wav", "raw.json", "segments.json", "segments.json"}
	for i, s := range []Stage{StageExtract, StageTranscribe, StageCorrect, StageTranslate} {
		if err := w.Complete(s, artifacts[i]); err != nil {
			t.Fatalf("Complete(%s) error = %v", s, err)
		}
	}

	snap := w.Snapshot()
	if snap.Current != StageTranslate {
		t.Errorf("Current = %s, want %s (no successor past stage 4)", snap.Current, StageTranslate)
	}
	for s := StageExtract; s <= StageTranslate; s++ {
		if !snap.Stages[s].Done {
			t.Errorf("stage %s not marked done", s)
		}
	}
	if got := w.Artifact(StageTranscribe); got != "raw.json" {
		t.Errorf("Artifact(transcribe) = %q", got)
	}
}

func TestCompleteOutOfOrder(t *testing.T) {
	w, _ := newTestWorkflow()

	if err := w.Complete(StageCorrect, "x"); err == nil {
		t.Error("Complete(3) with stage 2 undone should fail")
	}

	// Failure leaves every flag untouched.
	snap := w.Snapshot()
	for s := StageExtract; s <= StageTranslate; s++ {
		if snap.Stages[s].Done {
			t.Errorf("stage %s marked done after failed Complete", s)
		}
	}
	if snap.Current != StageExtract {
		t.Errorf("Current = %s, want %s", snap.Current, StageExtract)
	}
}

func TestEnterAt(t *testing.T) {
	w, _ := newTestWorkflow()

	if err := w.EnterAt(StageCorrect, "segments.json"); err != nil {
		t.Fatalf("EnterAt(3) error = %v", err)
	}

	snap := w.Snapshot()
	if snap.Current != StageCorrect {
		t.Errorf("Current = %s, want %s", snap.Current, StageCorrect)
	}
	if !snap.Stages[StageExtract].Done || !snap.Stages[StageTranscribe].Done {
		t.Error("bypassed stages should be marked satisfied")
	}
	if snap.Stages[StageCorrect].Done {
		t.Error("target stage should not be marked done")
	}
	if got := w.Artifact(StageTranscribe); got != "segments.json" {
		t.Errorf("Artifact(transcribe) = %q, want supplied path", got)
	}
}

func TestEnterAtTranslate(t *testing.T) {
	w, _ := newTestWorkflow()

	if err := w.EnterAt(StageTranslate, "segments.json"); err != nil {
		t.Fatalf("EnterAt(4) error = %v", err)
	}
	if !w.CanEnter(StageTranslate) {
		t.Error("stage 4 should be enterable after EnterAt(4)")
	}
}

func TestEnterAtInvalidStage(t *testing.T) {
	w, _ := newTestWorkflow()

	for _, s := range []Stage{StageExtract, StageTranscribe, Stage(0), Stage(5)} {
		if err := w.EnterAt(s, "x"); err == nil {
			t.Errorf("EnterAt(%d) should fail", s)
		}
	}
}

func TestReset(t *testing.T) {
	w, _ := newTestWorkflow()

	if err := w.Complete(StageExtract, "audio.wav"); err != nil {
		t.Fatal(err)
	}
	if err := w.Complete(StageTranscribe, "raw.json"); err != nil {
		t.Fatal(err)
	}

	w.Reset()

	snap := w.Snapshot()
	if snap.Current != StageExtract {
		t.Errorf("Current = %s after reset", snap.Current)
	}
	for s := StageExtract; s <= StageTranslate; s++ {
		if snap.Stages[s].Done || snap.Stages[s].Artifact != "" {
			t.Errorf("stage %s not cleared: %+v", s, snap.Stages[s])
		}
	}
}

func TestResetKeepsJobSlot(t *testing.T) {
	w, _ := newTestWorkflow()

	release, err := w.Begin()
	if err != nil {
		t.Fatal(err)
	}

	w.Reset()

	// The running job still owns the slot after a reset.
	if _, err := w.Begin(); err != ErrBusy {
		t.Errorf("Begin() during reset job error = %v, want ErrBusy", err)
	}

	release()
	release2, err := w.Begin()
	if err != nil {
		t.Errorf("Begin() after release error = %v", err)
	} else {
		release2()
	}
}

func TestRestore(t *testing.T) {
	w, _ := newTestWorkflow()

	if err := w.Complete(StageExtract, "audio.wav"); err != nil {
		t.Fatal(err)
	}
	if err := w.Complete(StageTranscribe, "segments.json"); err != nil {
		t.Fatal(err)
	}
	saved := w.Snapshot()

	w2, _ := newTestWorkflow()
	w2.Restore(saved)

	snap := w2.Snapshot()
	if snap.Current != StageCorrect {
		t.Errorf("Current = %s, want %s", snap.Current, StageCorrect)
	}
	if !w2.CanEnter(StageCorrect) {
		t.Error("stage 3 should be enterable after restore")
	}
	if got := w2.Artifact(StageExtract); got != "audio.wav" {
		t.Errorf("Artifact(extract) = %q", got)
	}
	if snap.Busy {
		t.Error("busy flag must not be restored")
	}
}

func TestBeginFailsFastWhenBusy(t *testing.T) {
	w, _ := newTestWorkflow()

	release, err := w.Begin()
	if err != nil {
		t.Fatalf("Begin() error = %v", err)
	}

	if _, err := w.Begin(); err != ErrBusy {
		t.Errorf("second Begin() error = %v, want ErrBusy", err)
	}

	release()

	release2, err := w.Begin()
	if err != nil {
		t.Errorf("Begin() after release error = %v", err)
	} else {
		release2()
	}
}

func TestSnapshotPublished(t *testing.T) {
	states := state.New()
	w := New(states, logger.New("error"))

	var last Snapshot
	notified := 0
	states.Subscribe(state.KeyWorkflow, func(v interface{}) {
		last = v.(Snapshot)
		notified++
	})

	if err := w.Complete(StageExtract, "audio.wav"); err != nil {
		t.Fatal(err)
	}

	if notified != 1 {
		t.Fatalf("notified %d times, want 1", notified)
	}
	if last.Current != StageTranscribe || !last.Stages[StageExtract].Done {
		t.Errorf("published snapshot = %+v", last)
	}
}
