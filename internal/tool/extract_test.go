package tool

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/internal/logger"
	"github.com/slidecast/slidecast/pkg/executor"
)

type fakeExec struct {
	calls  []executor.Spec
	result executor.Result
}

func (f *fakeExec) Run(ctx context.Context, spec executor.Spec) executor.Result {
	f.calls = append(f.calls, spec)
	return f.result
}

func testConfig() *config.Config {
	return &config.Config{
		Tools:      config.ToolsConfig{Python: "python3", FFmpeg: "ffmpeg", ScriptsDir: "scripts"},
		Whisper:    config.WhisperConfig{Language: "he", ModelSize: "medium"},
		Translator: config.TranslatorConfig{Model: "gemini-2.5-flash", SourceLang: "he", TargetLang: "en"},
	}
}

func TestExtractMissingVideo(t *testing.T) {
	fake := &fakeExec{}
	e := NewExtractor(fake, testConfig(), logger.New("error"))

	res := e.Extract(context.Background(), "/nonexistent/video.mp4", "/tmp/audio.wav", nil)

	if res.Success || res.Kind != executor.FailureSpawn {
		t.Errorf("result = %+v, want spawn-class failure", res)
	}
	if len(fake.calls) != 0 {
		t.Error("nothing should be spawned when the input is missing")
	}
}

func TestExtractSpec(t *testing.T) {
	fake := &fakeExec{result: executor.Result{Success: true}}
	e := NewExtractor(fake, testConfig(), logger.New("error"))

	dir := t.TempDir()
	video := filepath.Join(dir, "talk.mp4")
	if err := os.WriteFile(video, []byte("v"), 0644); err != nil {
		t.Fatal(err)
	}
	audio := filepath.Join(dir, "files", "audio.wav")

	res := e.Extract(context.Background(), video, audio, nil)
	if !res.Success {
		t.Fatalf("result = %+v", res)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(fake.calls))
	}
	spec := fake.calls[0]
	if spec.Command != "python3" {
		t.Errorf("Command = %q", spec.Command)
	}
	want := []string{filepath.Join("scripts", "extract_audio.py"), video, audio}
	if len(spec.Args) != len(want) {
		t.Fatalf("Args = %v", spec.Args)
	}
	for i, w := range want {
		if spec.Args[i] != w {
			t.Errorf("Args[%d] = %q, want %q", i, spec.Args[i], w)
		}
	}
	if spec.Timeout != config.ExtractTimeout {
		t.Errorf("Timeout = %v", spec.Timeout)
	}

	if _, err := os.Stat(filepath.Dir(audio)); err != nil {
		t.Errorf("output folder not created: %v", err)
	}
}
