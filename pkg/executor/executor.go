package executor

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/slidecast/slidecast/internal/logger"
)

const defaultKillGrace = 5 * time.Second

type implExecutor struct {
	logger logger.Logger
}

// New creates a new Executor instance
func New(log logger.Logger) Executor {
	return &implExecutor{logger: log}
}

// Run spawns the external process described by spec and supervises it to
// completion. Exactly one process is spawned per call.
func (e *implExecutor) Run(ctx context.Context, spec Spec) Result {
	grace := spec.KillGrace
	if grace == 0 {
		grace = defaultKillGrace
	}

	cmd := exec.Command(spec.Command, spec.Args...)
	cmd.Dir = spec.Dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return spawnFailure(spec.Command, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return spawnFailure(spec.Command, err)
	}

	if err := cmd.Start(); err != nil {
		return spawnFailure(spec.Command, err)
	}

	var (
		mu         sync.Mutex
		errorLines []string
		statusErr  string
		sawMemory  bool
	)

	emit := func(ev Event) {
		if spec.OnEvent != nil {
			spec.OnEvent(ev)
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)

	// Single stdout reader: events are delivered in emission order.
	go func() {
		defer wg.Done()
		sc := bufio.NewScanner(stdout)
		sc.Buffer(make([]byte, 1024*1024), 1024*1024)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			ev, perr := ParseLine(line)
			if perr != nil {
				e.logger.Warn(ctx, "malformed tool output line: %v", perr)
			}
			if ev.Kind == EventStatus && ev.Level == LevelError {
				mu.Lock()
				if statusErr == "" {
					statusErr = ev.Message
				}
				mu.Unlock()
			}
			emit(ev)
		}
	}()

	go func() {
		defer wg.Done()
		sc := bufio.NewScanner(stderr)
		sc.Buffer(make([]byte, 1024*1024), 1024*1024)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			switch classifyStderr(line) {
			case stderrBenign:
				e.logger.Debug(ctx, "tool diagnostic (suppressed): %s", line)
			case stderrMemory:
				mu.Lock()
				sawMemory = true
				errorLines = append(errorLines, line)
				mu.Unlock()
			case stderrError:
				e.logger.Debug(ctx, "tool diagnostic: %s", line)
				mu.Lock()
				errorLines = append(errorLines, line)
				mu.Unlock()
			}
		}
	}()

	done := make(chan error, 1)
	go func() {
		wg.Wait()
		done <- cmd.Wait()
	}()

	var timeoutCh <-chan time.Time
	if spec.Timeout > 0 {
		timer := time.NewTimer(spec.Timeout)
		defer timer.Stop()
		timeoutCh = timer.C
	}

	var waitErr error
	select {
	case waitErr = <-done:
	case <-timeoutCh:
		e.logger.Warn(ctx, "tool %s exceeded %s timeout, terminating", spec.Command, spec.Timeout)
		e.terminate(cmd, done, grace)
		return Result{Kind: FailureTimeout, Err: timeoutMsg, ExitCode: -1}
	case <-ctx.Done():
		e.terminate(cmd, done, grace)
		return Result{Kind: FailureInterrupted, Err: killedMsg, ExitCode: -1}
	}

	mu.Lock()
	defer mu.Unlock()

	exitCode := 0
	signaled := false
	if waitErr != nil {
		ee, ok := waitErr.(*exec.ExitError)
		if !ok {
			return Result{Kind: FailureRun, Err: waitErr.Error(), ExitCode: -1}
		}
		exitCode = ee.ExitCode()
		if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			signaled = true
		}
	}

	switch {
	case sawMemory:
		// Memory exhaustion wins even on a clean exit code.
		return Result{Kind: FailureMemory, Err: memoryErrMsg, ExitCode: exitCode}
	case signaled:
		return Result{Kind: FailureInterrupted, Err: killedMsg, ExitCode: -1}
	case exitCode == 0 && statusErr == "" && len(errorLines) == 0:
		return Result{Success: true, Kind: FailureNone, ExitCode: 0}
	default:
		msg := statusErr
		if msg == "" && len(errorLines) > 0 {
			msg = strings.Join(errorLines, "\n")
		}
		if msg == "" {
			msg = fmt.Sprintf("process exited with code %d", exitCode)
		}
		return Result{Kind: FailureRun, Err: msg, ExitCode: exitCode}
	}
}

// terminate escalates: SIGTERM, then SIGKILL after the grace period.
func (e *implExecutor) terminate(cmd *exec.Cmd, done chan error, grace time.Duration) {
	_ = cmd.Process.Signal(syscall.SIGTERM)
	select {
	case <-done:
	case <-time.After(grace):
		_ = cmd.Process.Kill()
		<-done
	}
}

func spawnFailure(command string, err error) Result {
	return Result{
		Kind:     FailureSpawn,
		Err:      fmt.Sprintf("failed to start %s: %v", command, err),
		ExitCode: -1,
	}
}
