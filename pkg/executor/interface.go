package executor

import (
	"context"
	"time"
)

// Executor supervises a single external process per call: it relays the
// process's structured stdout as events, classifies its stderr, enforces a
// timeout with kill escalation, and folds the exit condition into a Result.
type Executor interface {
	Run(ctx context.Context, spec Spec) Result
}

// Spec describes one external tool invocation.
type Spec struct {
	Command string
	Args    []string
	Dir     string

	// Timeout is the wall-clock limit for the whole run. Zero means no limit.
	Timeout time.Duration
	// KillGrace is how long to wait after SIGTERM before SIGKILL.
	// Zero means the default of 5 seconds.
	KillGrace time.Duration

	// OnEvent receives progress/status/log events in the order the process
	// emitted them. May be nil.
	OnEvent func(Event)
}

// FailureKind classifies why a run did not succeed.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// FailureSpawn means the process could not be started at all.
	FailureSpawn
	// FailureRun means the process ran but exited nonzero or emitted error
	// markers on its diagnostic stream.
	FailureRun
	// FailureMemory means the diagnostics indicate the tool ran out of memory.
	FailureMemory
	// FailureTimeout means the wall-clock limit elapsed and the process was killed.
	FailureTimeout
	// FailureInterrupted means the process was terminated by a signal without
	// a normal exit code.
	FailureInterrupted
)

// Result is the single success/failure outcome of a run. No error escapes a
// run as a Go error; callers branch on Success and read Err for the most
// specific message available.
type Result struct {
	Success  bool
	Kind     FailureKind
	Err      string
	ExitCode int
}
