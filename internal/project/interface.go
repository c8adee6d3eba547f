package project

import "context"

// Store manages the on-disk project layout under the projects root:
//
//	<projects>/<name>/project.json
//	<projects>/<name>/slides/
//	<projects>/<name>/files/
//	<projects>/<name>/segments.json
type Store interface {
	Create(ctx context.Context, name string) (*Project, error)
	Load(name string) (*Project, error)
	Save(p *Project) error

	ImportImages(ctx context.Context, name string, sources []string) (*Project, error)
	Images(name string) ([]string, error)

	CopyVideo(ctx context.Context, name, sourcePath string) (string, error)
	CopyFile(ctx context.Context, name, sourcePath string) (string, error)

	WriteJSON(name, fileName string, v interface{}) (string, error)

	ProjectPath(name string) (string, error)
	FilesDir(name string) string
	SegmentsPath(name string) string
	Root() string
}
