// Package tool wraps the external programs the pipeline depends on: the
// ffmpeg-based audio extractor, the speech-to-text script, the Gemini
// translator, and a probe that verifies the binaries are runnable.
package tool

import (
	"context"
	"time"

	"github.com/slidecast/slidecast/pkg/executor"
)

// Extractor pulls the audio track out of a video file.
type Extractor interface {
	Extract(ctx context.Context, videoPath, audioPath string, onEvent func(executor.Event)) executor.Result
}

// Transcriber turns an audio file into raw segment JSON. correctionsJSON is
// the serialized correction rules handed to the speech script; empty means no
// rules.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath, outPath, correctionsJSON string, onEvent func(executor.Event)) executor.Result
}

// Translator fills in the translation field of every segment in a file and
// writes the result. Per-segment failures are recorded in the output, not
// returned; only whole-run failures surface as errors.
type Translator interface {
	Translate(ctx context.Context, inPath, outPath string, onEvent func(executor.Event)) error
}

// Status is the outcome of a dependency probe.
type Status struct {
	Python        bool      `json:"python"`
	PythonVersion string    `json:"pythonVersion,omitempty"`
	FFmpeg        bool      `json:"ffmpeg"`
	FFmpegVersion string    `json:"ffmpegVersion,omitempty"`
	Ready         bool      `json:"ready"`
	LastChecked   time.Time `json:"lastChecked"`
}

// Prober checks that the external binaries respond to a version query.
// Results are cached briefly so repeated status displays stay cheap.
type Prober interface {
	Check(ctx context.Context, force bool) Status
}
