package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Projects: "projects",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing projects root",
			config:  Config{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Projects: "projects"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Tools.Python != "python3" {
		t.Errorf("Python = %v, want python3", cfg.Tools.Python)
	}
	if cfg.Tools.FFmpeg != "ffmpeg" {
		t.Errorf("FFmpeg = %v, want ffmpeg", cfg.Tools.FFmpeg)
	}
	if cfg.Whisper.ModelSize != "medium" {
		t.Errorf("ModelSize = %v, want medium", cfg.Whisper.ModelSize)
	}
	if cfg.Translator.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Translator.Model)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	content := `
paths:
  projects: "work/projects"
  data: "work/data"

tools:
  python: "python3"
  scripts_dir: "scripts"

whisper:
  language: "en"
  model_size: "base"

logging:
  level: "debug"
`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Projects != "work/projects" {
		t.Errorf("Projects = %v, want work/projects", cfg.Paths.Projects)
	}
	if cfg.Whisper.ModelSize != "base" {
		t.Errorf("ModelSize = %v, want base", cfg.Whisper.ModelSize)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
