package tool

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCredentialsMissingFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_PROMPT", "")

	c, err := LoadCredentials(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCredentials() error = %v", err)
	}
	if c.GeminiKey != "" || c.GeminiPrompt != "" {
		t.Errorf("credentials = %+v, want empty", c)
	}
}

func TestLoadCredentialsFromFile(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_PROMPT", "")

	dir := t.TempDir()
	data := `{"gemini-key": "file-key", "gemini-prompt": "translate well"}`
	if err := os.WriteFile(filepath.Join(dir, "translation.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCredentials(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.GeminiKey != "file-key" || c.GeminiPrompt != "translate well" {
		t.Errorf("credentials = %+v", c)
	}
}

func TestLoadCredentialsEnvOverride(t *testing.T) {
	dir := t.TempDir()
	data := `{"gemini-key": "file-key"}`
	if err := os.WriteFile(filepath.Join(dir, "translation.json"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("GEMINI_PROMPT", "")

	c, err := LoadCredentials(dir)
	if err != nil {
		t.Fatal(err)
	}
	if c.GeminiKey != "env-key" {
		t.Errorf("GeminiKey = %q, want env override", c.GeminiKey)
	}
}

func TestLoadCredentialsMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "translation.json"), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCredentials(dir); err == nil {
		t.Error("malformed credentials file should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_PROMPT", "")

	dir := t.TempDir()
	want := Credentials{GeminiKey: "k", GeminiPrompt: "p"}
	if err := SaveCredentials(dir, want); err != nil {
		t.Fatal(err)
	}

	got, err := LoadCredentials(dir)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
