package config

import (
	"fmt"
	"time"
)

type Config struct {
	Paths      PathsConfig      `yaml:"paths"`
	Tools      ToolsConfig      `yaml:"tools"`
	Whisper    WhisperConfig    `yaml:"whisper"`
	Translator TranslatorConfig `yaml:"translator"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type PathsConfig struct {
	// Projects is the root directory holding one subdirectory per project.
	Projects string `yaml:"projects"`
	// Data holds application-global files: corrections.json, translation.json.
	Data string `yaml:"data"`
}

type ToolsConfig struct {
	Python     string `yaml:"python"`
	FFmpeg     string `yaml:"ffmpeg"`
	ScriptsDir string `yaml:"scripts_dir"`
}

type WhisperConfig struct {
	Language  string `yaml:"language"`
	ModelSize string `yaml:"model_size"`
}

type TranslatorConfig struct {
	Model      string `yaml:"model"`
	SourceLang string `yaml:"source_lang"`
	TargetLang string `yaml:"target_lang"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Timeouts for the external tools. The speech engine gets longer because model
// loading dominates on first run.
const (
	ExtractTimeout    = 20 * time.Minute
	TranscribeTimeout = 30 * time.Minute
	TranslateTimeout  = 25 * time.Minute
)

func (c *Config) Validate() error {
	if c.Paths.Projects == "" {
		return fmt.Errorf("paths.projects is required")
	}

	if c.Paths.Data == "" {
		c.Paths.Data = "data"
	}
	if c.Tools.Python == "" {
		c.Tools.Python = "python3"
	}
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.ScriptsDir == "" {
		c.Tools.ScriptsDir = "scripts"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "he"
	}
	if c.Whisper.ModelSize == "" {
		c.Whisper.ModelSize = "medium"
	}
	if c.Translator.Model == "" {
		c.Translator.Model = "gemini-2.5-flash"
	}
	if c.Translator.SourceLang == "" {
		c.Translator.SourceLang = "he"
	}
	if c.Translator.TargetLang == "" {
		c.Translator.TargetLang = "en"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}
