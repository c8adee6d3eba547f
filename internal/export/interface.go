package export

import (
	"context"

	"github.com/slidecast/slidecast/internal/segment"
)

// Exporter renders project artifacts into documents for the narrator.
type Exporter interface {
	// Script writes the narration script as a .docx: one section per slide,
	// each segment's text followed by its translation.
	Script(ctx context.Context, title string, segments []segment.Segment, outputPath string) error
}
