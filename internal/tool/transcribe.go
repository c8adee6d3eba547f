package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/pkg/executor"
)

const transcribeScript = "transcribe_audio.py"

func (t *implTranscriber) Transcribe(ctx context.Context, audioPath, outPath, correctionsJSON string, onEvent func(executor.Event)) executor.Result {
	if _, err := os.Stat(audioPath); err != nil {
		return inputFailure(fmt.Sprintf("audio file does not exist: %s", audioPath))
	}

	// The script always receives a corrections argument so the positional
	// parameters after it stay fixed.
	if correctionsJSON == "" {
		correctionsJSON = "{}"
	}
	if !json.Valid([]byte(correctionsJSON)) {
		return inputFailure("correction rules are not valid JSON")
	}

	t.logger.Info(ctx, "Transcribing %s (language=%s, model=%s)", audioPath, t.language, t.modelSize)
	return t.exec.Run(ctx, executor.Spec{
		Command: t.python,
		Args: []string{
			filepath.Join(t.scripts, transcribeScript),
			audioPath,
			outPath,
			correctionsJSON,
			t.language,
			t.modelSize,
		},
		Timeout: config.TranscribeTimeout,
		OnEvent: onEvent,
	})
}
