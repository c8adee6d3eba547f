package project

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	descriptorFile = "project.json"
	slidesDir      = "slides"
	filesDir       = "files"
	segmentsFile   = "segments.json"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// Create sets up the project directory layout and writes the initial
// descriptor. Fails if a project of that name already exists.
func (s *implStore) Create(ctx context.Context, name string) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("project name is required")
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return nil, fmt.Errorf("create projects root: %w", err)
	}

	path := filepath.Join(s.root, name)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("project %q already exists", name)
	}

	for _, dir := range []string{path, filepath.Join(path, slidesDir), filepath.Join(path, filesDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create project directory: %w", err)
		}
	}

	now := time.Now().UTC()
	p := &Project{
		Name:      name,
		CreatedAt: now,
		UpdatedOn: now,
		Path:      path,
		Slides:    []SlideRef{},
	}
	if err := s.writeDescriptor(p); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Created project %q at %s", name, path)
	return p, nil
}

// Load reads a project descriptor.
func (s *implStore) Load(name string) (*Project, error) {
	path := filepath.Join(s.root, name, descriptorFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project descriptor: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse project descriptor: %w", err)
	}
	return &p, nil
}

// Save persists the descriptor and bumps the modification timestamp.
func (s *implStore) Save(p *Project) error {
	p.UpdatedOn = time.Now().UTC()
	return s.writeDescriptor(p)
}

func (s *implStore) writeDescriptor(p *Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal project descriptor: %w", err)
	}
	path := filepath.Join(p.Path, descriptorFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write project descriptor: %w", err)
	}
	return nil
}

// ImportImages copies the source files into the project's slides folder and
// merges them into the descriptor, de-duplicating by file name.
func (s *implStore) ImportImages(ctx context.Context, name string, sources []string) (*Project, error) {
	p, err := s.Load(name)
	if err != nil {
		return nil, err
	}

	dest := filepath.Join(p.Path, slidesDir)
	if err := os.MkdirAll(dest, 0755); err != nil {
		return nil, fmt.Errorf("create slides folder: %w", err)
	}

	var added []SlideRef
	for _, src := range sources {
		fileName := filepath.Base(src)
		if !imageExtensions[strings.ToLower(filepath.Ext(fileName))] {
			s.logger.Warn(ctx, "Skipping non-image file: %s", src)
			continue
		}
		if err := copyFile(src, filepath.Join(dest, fileName)); err != nil {
			return nil, fmt.Errorf("copy image %s: %w", fileName, err)
		}
		added = append(added, SlideRef{
			FileName: fileName,
			Path:     filepath.Join(slidesDir, fileName),
		})
	}

	p.Slides = mergeSlides(p.Slides, added)
	if err := s.Save(p); err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "Imported %d images into %q (%d total)", len(added), name, len(p.Slides))
	return p, nil
}

// Images lists the slide image files on disk, sorted by the first number in
// each file name so "slide2" comes before "slide10".
func (s *implStore) Images(name string) ([]string, error) {
	dir := filepath.Join(s.root, name, slidesDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read slides folder: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}

	sortByNumber(paths)
	return paths, nil
}

var numberPattern = regexp.MustCompile(`\d+`)

func sortByNumber(paths []string) {
	num := func(path string) int {
		m := numberPattern.FindString(filepath.Base(path))
		if m == "" {
			return 0
		}
		n, _ := strconv.Atoi(m)
		return n
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return num(paths[i]) < num(paths[j])
	})
}

// CopyVideo copies a source video into the project's files folder under the
// fixed name video.<ext>.
func (s *implStore) CopyVideo(ctx context.Context, name, sourcePath string) (string, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("video file does not exist: %s", sourcePath)
	}

	dest := filepath.Join(s.FilesDir(name), "video"+filepath.Ext(sourcePath))
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create files folder: %w", err)
	}
	if err := copyFile(sourcePath, dest); err != nil {
		return "", fmt.Errorf("copy video: %w", err)
	}

	s.logger.Info(ctx, "Copied video into %q: %s", name, dest)
	return dest, nil
}

// CopyFile copies an arbitrary file into the project directory, preserving its
// name. Used when entering the workflow from a pre-existing artifact.
func (s *implStore) CopyFile(ctx context.Context, name, sourcePath string) (string, error) {
	if _, err := os.Stat(sourcePath); err != nil {
		return "", fmt.Errorf("source file does not exist: %s", sourcePath)
	}

	path, err := s.ProjectPath(name)
	if err != nil {
		return "", err
	}
	dest := filepath.Join(path, filepath.Base(sourcePath))
	if err := copyFile(sourcePath, dest); err != nil {
		return "", fmt.Errorf("copy file: %w", err)
	}
	return dest, nil
}

// WriteJSON writes a named JSON document into the project directory. The
// .json suffix is appended when missing.
func (s *implStore) WriteJSON(name, fileName string, v interface{}) (string, error) {
	path, err := s.ProjectPath(name)
	if err != nil {
		return "", err
	}
	if !strings.HasSuffix(fileName, ".json") {
		fileName += ".json"
	}
	dest := filepath.Join(path, fileName)
	if err := WriteJSONPath(dest, v); err != nil {
		return "", err
	}
	return dest, nil
}

func (s *implStore) ProjectPath(name string) (string, error) {
	path := filepath.Join(s.root, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("project %q does not exist", name)
	}
	return path, nil
}

func (s *implStore) FilesDir(name string) string {
	return filepath.Join(s.root, name, filesDir)
}

func (s *implStore) SegmentsPath(name string) string {
	return filepath.Join(s.root, name, segmentsFile)
}

func (s *implStore) Root() string {
	return s.root
}

// WriteJSONPath writes a JSON document to an arbitrary absolute path,
// overwriting whatever is there. Saves are whole-file; last writer wins.
func WriteJSONPath(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// ReadJSON reads a JSON document from an arbitrary path.
func ReadJSON(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
