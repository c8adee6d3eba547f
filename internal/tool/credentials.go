package tool

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const credentialsFile = "translation.json"

// Credentials are the translation service settings, stored application-wide
// rather than per project.
type Credentials struct {
	GeminiKey    string `json:"gemini-key"`
	GeminiPrompt string `json:"gemini-prompt"`
}

// LoadCredentials reads <dataDir>/translation.json. A missing file is fine;
// GEMINI_API_KEY and GEMINI_PROMPT environment variables override file values.
func LoadCredentials(dataDir string) (Credentials, error) {
	var c Credentials

	data, err := os.ReadFile(filepath.Join(dataDir, credentialsFile))
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &c); err != nil {
			return Credentials{}, fmt.Errorf("parse %s: %w", credentialsFile, err)
		}
	case !os.IsNotExist(err):
		return Credentials{}, fmt.Errorf("read %s: %w", credentialsFile, err)
	}

	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.GeminiKey = v
	}
	if v := os.Getenv("GEMINI_PROMPT"); v != "" {
		c.GeminiPrompt = v
	}
	return c, nil
}

// SaveCredentials writes the credentials file into the data directory.
func SaveCredentials(dataDir string, c Credentials) error {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", credentialsFile, err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, credentialsFile), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", credentialsFile, err)
	}
	return nil
}
