package tool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/slidecast/slidecast/internal/segment"
	"github.com/slidecast/slidecast/pkg/executor"
)

// ErrQuotaExhausted marks a run aborted because the API reported a quota or
// rate limit problem. Segments translated before the abort are kept.
var ErrQuotaExhausted = errors.New("translation quota exhausted")

// translationErrorMarker is stored in place of a translation that failed so
// the reader can spot and retry it.
const translationErrorMarker = "[translation_error]"

const translateTimeoutMsg = "translation timed out; partial results were saved"

func (t *implTranslator) Translate(ctx context.Context, inPath, outPath string, onEvent func(executor.Event)) error {
	if strings.TrimSpace(t.creds.GeminiKey) == "" {
		return fmt.Errorf("gemini api key is not configured; set it in translation.json or GEMINI_API_KEY")
	}

	segments, err := segment.ReadWorking(inPath)
	if err != nil {
		return err
	}

	// The whole run gets a wall-clock bound, same as the subprocess stages.
	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	generate := t.generate
	if generate == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  t.creds.GeminiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return fmt.Errorf("create gemini client: %w", err)
		}
		generate = func(ctx context.Context, prompt string) (string, error) {
			return generateText(ctx, client, t.model, prompt)
		}
	}

	failed := 0
	for i := range segments {
		text := strings.TrimSpace(segments[i].Text)
		if text == "" {
			continue
		}

		emit(onEvent, executor.Event{
			Kind:    executor.EventStatus,
			Level:   executor.LevelInfo,
			Message: fmt.Sprintf("Translating segment %d of %d", i+1, len(segments)),
		})

		// One request in flight at a time.
		translated, err := generate(ctx, t.prompt(text))
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
				if werr := segment.Write(outPath, segments); werr != nil {
					t.logger.Error(ctx, "Failed to save partial translations: %v", werr)
				}
				return fmt.Errorf("segment %d: %s", segments[i].ID, translateTimeoutMsg)
			}
			if isQuotaError(err) {
				// Keep what was translated so far before giving up.
				if werr := segment.Write(outPath, segments); werr != nil {
					t.logger.Error(ctx, "Failed to save partial translations: %v", werr)
				}
				return fmt.Errorf("segment %d: %v: %w", segments[i].ID, err, ErrQuotaExhausted)
			}
			t.logger.Warn(ctx, "Segment %d failed to translate: %v", segments[i].ID, err)
			segments[i].Translation = translationErrorMarker
			failed++
			continue
		}

		segments[i].Translation = strings.TrimSpace(translated)
		emit(onEvent, executor.Event{
			Kind:    executor.EventProgress,
			Percent: (i + 1) * 100 / len(segments),
		})
	}

	if err := segment.Write(outPath, segments); err != nil {
		return err
	}

	if failed > 0 {
		emit(onEvent, executor.Event{
			Kind:    executor.EventStatus,
			Level:   executor.LevelWarning,
			Message: fmt.Sprintf("%d segments failed to translate; marked %s", failed, translationErrorMarker),
		})
	} else {
		emit(onEvent, executor.Event{
			Kind:    executor.EventStatus,
			Level:   executor.LevelSuccess,
			Message: fmt.Sprintf("Translated %d segments", len(segments)),
		})
	}
	return nil
}

// prompt prepends the configured system prompt to the segment text, falling
// back to a plain translation instruction.
func (t *implTranslator) prompt(text string) string {
	system := strings.TrimSpace(t.creds.GeminiPrompt)
	if system == "" {
		system = fmt.Sprintf(
			"Translate the following text from %s to %s. Return only the translation, nothing else.",
			t.sourceLang, t.targetLang,
		)
	}
	return system + "\n\n" + text
}

func generateText(ctx context.Context, client *genai.Client, model, prompt string) (string, error) {
	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		if text != "" {
			return text, nil
		}
	}
	return "", fmt.Errorf("empty response from model")
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func emit(onEvent func(executor.Event), ev executor.Event) {
	if onEvent != nil {
		onEvent(ev)
	}
}
