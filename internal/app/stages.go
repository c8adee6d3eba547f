package app

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/slidecast/slidecast/internal/segment"
	"github.com/slidecast/slidecast/internal/state"
	"github.com/slidecast/slidecast/internal/workflow"
	"github.com/slidecast/slidecast/pkg/executor"
)

// ExtractAudio copies the source video into the project and runs the audio
// extraction tool. Stage 1 of the workflow.
func (a *App) ExtractAudio(ctx context.Context, videoPath string, onEvent func(executor.Event)) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if err := a.requireTools(ctx); err != nil {
		return err
	}

	release, err := a.Workflow.Begin()
	if err != nil {
		return err
	}
	defer release()

	video, err := a.Projects.CopyVideo(ctx, a.project, videoPath)
	if err != nil {
		return err
	}

	audio := filepath.Join(a.Projects.FilesDir(a.project), audioFile)
	res := a.Extractor.Extract(ctx, video, audio, onEvent)
	if !res.Success {
		return fmt.Errorf("audio extraction failed: %s", res.Err)
	}

	return a.Workflow.Complete(workflow.StageExtract, audio)
}

// Transcribe runs the speech tool on the extracted audio and converts its raw
// output into working segments. Stage 2.
func (a *App) Transcribe(ctx context.Context, onEvent func(executor.Event)) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if !a.Workflow.CanEnter(workflow.StageTranscribe) {
		return fmt.Errorf("transcription needs extracted audio; run extract first")
	}
	if err := a.requireTools(ctx); err != nil {
		return err
	}

	release, err := a.Workflow.Begin()
	if err != nil {
		return err
	}
	defer release()

	rules, err := segment.LoadRules(a.rulesPath())
	if err != nil {
		return err
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("marshal correction rules: %w", err)
	}

	audio := a.Workflow.Artifact(workflow.StageExtract)
	rawPath := filepath.Join(a.Projects.FilesDir(a.project), rawSegmentsFile)

	res := a.Transcriber.Transcribe(ctx, audio, rawPath, string(rulesJSON), onEvent)
	if !res.Success {
		return fmt.Errorf("transcription failed: %s", res.Err)
	}

	raw, err := segment.ReadRaw(rawPath)
	if err != nil {
		return err
	}
	segments := segment.Convert(raw)

	segmentsPath := a.Projects.SegmentsPath(a.project)
	if err := segment.Write(segmentsPath, segments); err != nil {
		return err
	}
	a.States.Set(state.KeySegments, segments)

	return a.Workflow.Complete(workflow.StageTranscribe, segmentsPath)
}

// ApplyCorrections runs the rule set over all segment texts and persists the
// result. Stage 3. Returns the number of replacements made.
func (a *App) ApplyCorrections(ctx context.Context) (int, error) {
	if err := a.requireOpen(); err != nil {
		return 0, err
	}
	if !a.Workflow.CanEnter(workflow.StageCorrect) {
		return 0, fmt.Errorf("correction needs a transcription; run transcribe first")
	}

	release, err := a.Workflow.Begin()
	if err != nil {
		return 0, err
	}
	defer release()

	rules, err := segment.LoadRules(a.rulesPath())
	if err != nil {
		return 0, err
	}

	segmentsPath := a.Projects.SegmentsPath(a.project)
	segments, err := segment.ReadWorking(segmentsPath)
	if err != nil {
		return 0, err
	}

	corrected, count := segment.NewReplacer(rules).ApplyAll(segments)
	if err := segment.Write(segmentsPath, corrected); err != nil {
		return 0, err
	}
	a.States.Set(state.KeySegments, corrected)
	a.Logger.Info(ctx, "Applied %d corrections across %d segments", count, len(corrected))

	if err := a.Workflow.Complete(workflow.StageCorrect, segmentsPath); err != nil {
		return 0, err
	}
	return count, nil
}

// Translate fills in segment translations via the translation service.
// Stage 4.
func (a *App) Translate(ctx context.Context, onEvent func(executor.Event)) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	if !a.Workflow.CanEnter(workflow.StageTranslate) {
		return fmt.Errorf("translation needs corrected segments; run correct first")
	}

	release, err := a.Workflow.Begin()
	if err != nil {
		return err
	}
	defer release()

	segmentsPath := a.Projects.SegmentsPath(a.project)
	if err := a.Translator.Translate(ctx, segmentsPath, segmentsPath, onEvent); err != nil {
		return err
	}

	segments, err := segment.ReadWorking(segmentsPath)
	if err != nil {
		return err
	}
	a.States.Set(state.KeySegments, segments)

	return a.Workflow.Complete(workflow.StageTranslate, segmentsPath)
}

// EnterAt joins the workflow at the correction or translation stage with a
// pre-existing segment file. For the correction stage the file is raw engine
// output and gets converted; for translation it is already in working form.
func (a *App) EnterAt(ctx context.Context, stage workflow.Stage, sourcePath string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}

	var segments []segment.Segment
	switch stage {
	case workflow.StageCorrect:
		raw, err := segment.ReadRaw(sourcePath)
		if err != nil {
			return err
		}
		segments = segment.Convert(raw)
	case workflow.StageTranslate:
		var err error
		segments, err = segment.ReadWorking(sourcePath)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("cannot enter workflow at stage %s", stage)
	}

	// Keep a copy of the original alongside the derived segments.
	if _, err := a.Projects.CopyFile(ctx, a.project, sourcePath); err != nil {
		a.Logger.Warn(ctx, "Could not copy source file into project: %v", err)
	}

	segmentsPath := a.Projects.SegmentsPath(a.project)
	if err := segment.Write(segmentsPath, segments); err != nil {
		return err
	}
	a.States.Set(state.KeySegments, segments)

	return a.Workflow.EnterAt(stage, segmentsPath)
}

// ResetWorkflow clears all stage progress for the open project.
func (a *App) ResetWorkflow(ctx context.Context) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	a.Workflow.Reset()
	a.Logger.Info(ctx, "Workflow reset for project %q", a.project)
	return nil
}
