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

func writeTempAudio(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "audio.wav")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribeMissingAudio(t *testing.T) {
	fake := &fakeExec{}
	tr := NewTranscriber(fake, testConfig(), logger.New("error"))

	res := tr.Transcribe(context.Background(), "/nonexistent/audio.wav", "out.json", "", nil)
	if res.Success || res.Kind != executor.FailureSpawn {
		t.Errorf("result = %+v", res)
	}
	if len(fake.calls) != 0 {
		t.Error("nothing should be spawned")
	}
}

func TestTranscribeMalformedCorrections(t *testing.T) {
	fake := &fakeExec{}
	tr := NewTranscriber(fake, testConfig(), logger.New("error"))

	res := tr.Transcribe(context.Background(), writeTempAudio(t), "out.json", `{"broken`, nil)
	if res.Success || res.Kind != executor.FailureSpawn {
		t.Errorf("result = %+v, want input-validation failure", res)
	}
	if len(fake.calls) != 0 {
		t.Error("malformed corrections must fail before spawn")
	}
}

func TestTranscribeSpec(t *testing.T) {
	fake := &fakeExec{result: executor.Result{Success: true}}
	tr := NewTranscriber(fake, testConfig(), logger.New("error"))

	audio := writeTempAudio(t)
	res := tr.Transcribe(context.Background(), audio, "out.json", `{"teh":"the"}`, nil)
	if !res.Success {
		t.Fatalf("result = %+v", res)
	}

	spec := fake.calls[0]
	want := []string{
		filepath.Join("scripts", "transcribe_audio.py"),
		audio,
		"out.json",
		`{"teh":"the"}`,
		"he",
		"medium",
	}
	if len(spec.Args) != len(want) {
		t.Fatalf("Args = %v", spec.Args)
	}
	for i, w := range want {
		if spec.Args[i] != w {
			t.Errorf("Args[%d] = %q, want %q", i, spec.Args[i], w)
		}
	}
	if spec.Timeout != config.TranscribeTimeout {
		t.Errorf("Timeout = %v", spec.Timeout)
	}
}

func TestTranscribeEmptyCorrections(t *testing.T) {
	fake := &fakeExec{result: executor.Result{Success: true}}
	tr := NewTranscriber(fake, testConfig(), logger.New("error"))

	tr.Transcribe(context.Background(), writeTempAudio(t), "out.json", "", nil)

	// Positional arguments after the rules must not shift when no rules exist.
	if got := fake.calls[0].Args[3]; got != "{}" {
		t.Errorf("corrections arg = %q, want {}", got)
	}
}
