package tool

import (
	"context"
	"os/exec"
	"sync"
	"time"

	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/internal/logger"
	"github.com/slidecast/slidecast/pkg/executor"
)

type implExtractor struct {
	exec    executor.Executor
	python  string
	scripts string
	logger  logger.Logger
}

// NewExtractor creates the audio extraction adapter.
func NewExtractor(exe executor.Executor, cfg *config.Config, log logger.Logger) Extractor {
	return &implExtractor{
		exec:    exe,
		python:  cfg.Tools.Python,
		scripts: cfg.Tools.ScriptsDir,
		logger:  log,
	}
}

type implTranscriber struct {
	exec      executor.Executor
	python    string
	scripts   string
	language  string
	modelSize string
	logger    logger.Logger
}

// NewTranscriber creates the speech-to-text adapter.
func NewTranscriber(exe executor.Executor, cfg *config.Config, log logger.Logger) Transcriber {
	return &implTranscriber{
		exec:      exe,
		python:    cfg.Tools.Python,
		scripts:   cfg.Tools.ScriptsDir,
		language:  cfg.Whisper.Language,
		modelSize: cfg.Whisper.ModelSize,
		logger:    log,
	}
}

type implTranslator struct {
	creds      Credentials
	model      string
	sourceLang string
	targetLang string
	timeout    time.Duration
	logger     logger.Logger

	// generate overrides the Gemini call in tests. Nil means real client.
	generate func(ctx context.Context, prompt string) (string, error)
}

// NewTranslator creates the Gemini translation adapter.
func NewTranslator(creds Credentials, cfg *config.Config, log logger.Logger) Translator {
	return &implTranslator{
		creds:      creds,
		model:      cfg.Translator.Model,
		sourceLang: cfg.Translator.SourceLang,
		targetLang: cfg.Translator.TargetLang,
		timeout:    config.TranslateTimeout,
		logger:     log,
	}
}

type implProber struct {
	python string
	ffmpeg string
	ttl    time.Duration
	run    func(ctx context.Context, name string, args ...string) ([]byte, error)

	mu     sync.Mutex
	cached Status
}

// NewProber creates a dependency prober for the configured binaries.
func NewProber(cfg *config.Config) Prober {
	return &implProber{
		python: cfg.Tools.Python,
		ffmpeg: cfg.Tools.FFmpeg,
		ttl:    probeCacheTTL,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).CombinedOutput()
		},
	}
}
