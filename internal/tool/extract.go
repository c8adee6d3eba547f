package tool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/pkg/executor"
)

const extractScript = "extract_audio.py"

// inputFailure is a validation failure caught before anything is spawned.
func inputFailure(msg string) executor.Result {
	return executor.Result{Kind: executor.FailureSpawn, Err: msg, ExitCode: -1}
}

func (e *implExtractor) Extract(ctx context.Context, videoPath, audioPath string, onEvent func(executor.Event)) executor.Result {
	if _, err := os.Stat(videoPath); err != nil {
		return inputFailure(fmt.Sprintf("video file does not exist: %s", videoPath))
	}
	if err := os.MkdirAll(filepath.Dir(audioPath), 0755); err != nil {
		return inputFailure(fmt.Sprintf("create output folder: %v", err))
	}

	e.logger.Info(ctx, "Extracting audio: %s -> %s", videoPath, audioPath)
	return e.exec.Run(ctx, executor.Spec{
		Command: e.python,
		Args:    []string{filepath.Join(e.scripts, extractScript), videoPath, audioPath},
		Timeout: config.ExtractTimeout,
		OnEvent: onEvent,
	})
}
