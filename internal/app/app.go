// Package app wires the application together: one open project at a time,
// its workflow state, the correction rules, and the external tool adapters.
package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/slidecast/slidecast/internal/config"
	"github.com/slidecast/slidecast/internal/export"
	"github.com/slidecast/slidecast/internal/logger"
	"github.com/slidecast/slidecast/internal/project"
	"github.com/slidecast/slidecast/internal/segment"
	"github.com/slidecast/slidecast/internal/state"
	"github.com/slidecast/slidecast/internal/tool"
	"github.com/slidecast/slidecast/internal/watcher"
	"github.com/slidecast/slidecast/internal/workflow"
	"github.com/slidecast/slidecast/pkg/executor"
)

const (
	workflowFile    = "workflow.json"
	rawSegmentsFile = "raw_segments.json"
	audioFile       = "audio.wav"
	correctionsFile = "corrections.json"
	scriptFile      = "script.docx"
)

// App owns the long-lived components and the name of the open project.
// Operations that need a project fail until Open or CreateProject succeeds.
type App struct {
	Config   *config.Config
	Logger   logger.Logger
	States   *state.Store
	Projects project.Store
	Workflow workflow.Workflow

	Extractor   tool.Extractor
	Transcriber tool.Transcriber
	Translator  tool.Translator
	Prober      tool.Prober
	Exporter    export.Exporter

	project string
}

// New builds an App from configuration. Credentials come from the data
// directory with environment overrides.
func New(cfg *config.Config) (*App, error) {
	log := logger.New(cfg.Logging.Level)
	states := state.New()
	exe := executor.New(log)

	creds, err := tool.LoadCredentials(cfg.Paths.Data)
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:      cfg,
		Logger:      log,
		States:      states,
		Projects:    project.New(cfg.Paths.Projects, log),
		Workflow:    workflow.New(states, log),
		Extractor:   tool.NewExtractor(exe, cfg, log),
		Transcriber: tool.NewTranscriber(exe, cfg, log),
		Translator:  tool.NewTranslator(creds, cfg, log),
		Prober:      tool.NewProber(cfg),
		Exporter:    export.New(log),
	}

	// Workflow state is durable per project so separate invocations see the
	// same stage progress.
	states.Subscribe(state.KeyWorkflow, func(v interface{}) {
		a.persistWorkflow(v)
	})

	return a, nil
}

func (a *App) persistWorkflow(v interface{}) {
	if a.project == "" {
		return
	}
	snap, ok := v.(workflow.Snapshot)
	if !ok {
		return
	}
	path, err := a.Projects.ProjectPath(a.project)
	if err != nil {
		return
	}
	if err := project.WriteJSONPath(filepath.Join(path, workflowFile), snap); err != nil {
		a.Logger.Error(context.Background(), "Failed to persist workflow state: %v", err)
	}
}

// Open loads a project and restores its saved workflow state.
func (a *App) Open(ctx context.Context, name string) error {
	p, err := a.Projects.Load(name)
	if err != nil {
		return err
	}

	a.project = name
	a.States.Set(state.KeyProject, p)
	a.States.Set(state.KeySlides, p.Slides)

	var snap workflow.Snapshot
	if err := project.ReadJSON(filepath.Join(p.Path, workflowFile), &snap); err == nil {
		a.Workflow.Restore(snap)
	} else {
		a.Workflow.Reset()
	}

	a.Logger.Info(ctx, "Opened project %q", name)
	return nil
}

// ProjectName returns the name of the open project, empty when none is open.
func (a *App) ProjectName() string {
	return a.project
}

func (a *App) requireOpen() error {
	if a.project == "" {
		return errors.New("no project is open")
	}
	return nil
}

// CreateProject creates and opens a new project.
func (a *App) CreateProject(ctx context.Context, name string) (*project.Project, error) {
	p, err := a.Projects.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := a.Open(ctx, name); err != nil {
		return nil, err
	}
	return p, nil
}

// ImportImages copies slide images into the open project.
func (a *App) ImportImages(ctx context.Context, sources []string) (*project.Project, error) {
	if err := a.requireOpen(); err != nil {
		return nil, err
	}
	p, err := a.Projects.ImportImages(ctx, a.project, sources)
	if err != nil {
		return nil, err
	}
	a.States.Set(state.KeyProject, p)
	a.States.Set(state.KeySlides, p.Slides)
	return p, nil
}

// ListImages returns the slide image paths in presentation order.
func (a *App) ListImages() ([]string, error) {
	if err := a.requireOpen(); err != nil {
		return nil, err
	}
	return a.Projects.Images(a.project)
}

// SyncSlides rebuilds the project's slide list from what is on disk. The
// slides folder is the source of truth when files change outside the app.
func (a *App) SyncSlides(ctx context.Context) error {
	if err := a.requireOpen(); err != nil {
		return err
	}

	images, err := a.Projects.Images(a.project)
	if err != nil {
		return err
	}
	p, err := a.Projects.Load(a.project)
	if err != nil {
		return err
	}

	refs := make([]project.SlideRef, 0, len(images))
	for _, img := range images {
		name := filepath.Base(img)
		refs = append(refs, project.SlideRef{
			FileName: name,
			Path:     filepath.Join("slides", name),
		})
	}
	p.Slides = refs
	if err := a.Projects.Save(p); err != nil {
		return err
	}

	a.States.Set(state.KeyProject, p)
	a.States.Set(state.KeySlides, p.Slides)
	a.Logger.Info(ctx, "Synced %d slides from disk", len(refs))
	return nil
}

// WatchSlides blocks, monitoring the open project's slides folder and
// re-syncing the slide list on changes, until the context is canceled.
func (a *App) WatchSlides(ctx context.Context) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	path, err := a.Projects.ProjectPath(a.project)
	if err != nil {
		return err
	}

	w, err := watcher.New(filepath.Join(path, "slides"), a.SyncSlides, a.Logger)
	if err != nil {
		return err
	}
	defer w.Stop()
	return w.Start(ctx)
}

// CheckDependencies probes the external binaries.
func (a *App) CheckDependencies(ctx context.Context, force bool) tool.Status {
	return a.Prober.Check(ctx, force)
}

// Segments returns the open project's working segments.
func (a *App) Segments() ([]segment.Segment, error) {
	if err := a.requireOpen(); err != nil {
		return nil, err
	}
	return segment.ReadWorking(a.Projects.SegmentsPath(a.project))
}

// EditSegment replaces a segment's text and persists the full list.
func (a *App) EditSegment(ctx context.Context, id int, text string) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	return a.updateSegments(ctx, func(segments []segment.Segment) ([]segment.Segment, error) {
		return segment.Edit(segments, id, text)
	})
}

// AssignSlide sets a segment's slide number. Zero unassigns.
func (a *App) AssignSlide(ctx context.Context, id, slide int) error {
	if err := a.requireOpen(); err != nil {
		return err
	}
	return a.updateSegments(ctx, func(segments []segment.Segment) ([]segment.Segment, error) {
		return segment.Assign(segments, id, slide)
	})
}

func (a *App) updateSegments(ctx context.Context, fn func([]segment.Segment) ([]segment.Segment, error)) error {
	path := a.Projects.SegmentsPath(a.project)
	segments, err := segment.ReadWorking(path)
	if err != nil {
		return err
	}
	updated, err := fn(segments)
	if err != nil {
		return err
	}
	if err := segment.Write(path, updated); err != nil {
		return err
	}
	a.States.Set(state.KeySegments, updated)
	return nil
}

// ExportScript writes the narration script docx. An empty path defaults to
// script.docx in the project directory.
func (a *App) ExportScript(ctx context.Context, outPath string) (string, error) {
	if err := a.requireOpen(); err != nil {
		return "", err
	}
	segments, err := a.Segments()
	if err != nil {
		return "", err
	}
	if outPath == "" {
		path, err := a.Projects.ProjectPath(a.project)
		if err != nil {
			return "", err
		}
		outPath = filepath.Join(path, scriptFile)
	}
	if err := a.Exporter.Script(ctx, a.project, segments, outPath); err != nil {
		return "", err
	}
	return outPath, nil
}

func missingTools(st tool.Status) string {
	var missing string
	if !st.Python {
		missing = "python"
	}
	if !st.FFmpeg {
		if missing != "" {
			missing += ", "
		}
		missing += "ffmpeg"
	}
	return missing
}

// requireTools fails when the external binaries a stage needs are absent.
func (a *App) requireTools(ctx context.Context) error {
	st := a.Prober.Check(ctx, false)
	if !st.Ready {
		return fmt.Errorf("required tools are not available: %s", missingTools(st))
	}
	return nil
}
