package export

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/slidecast/slidecast/internal/segment"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 13
	titleSize   = 16
	headingSize = 14
)

func (e *implExporter) Script(ctx context.Context, title string, segments []segment.Segment, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, slide := range slideOrder(segments) {
		addStyledRun(doc.AddParagraph(""), slideLabel(slide), true, headingSize)

		for _, s := range segments {
			if s.Slide != slide {
				continue
			}
			if text := strings.TrimSpace(s.Text); text != "" {
				addStyledRun(doc.AddParagraph(""), text, false, fontSize)
			}
			if tr := strings.TrimSpace(s.Translation); tr != "" {
				p := doc.AddParagraph("")
				p.AddText(tr).Font(fontName).Size(fontSize).Color("555555")
			}
		}
		doc.AddParagraph("")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	e.logger.Info(ctx, "Exported narration script: %s", outputPath)
	return nil
}

// slideOrder returns the distinct slide numbers in presentation order, with
// unassigned segments (slide 0) at the end.
func slideOrder(segments []segment.Segment) []int {
	seen := make(map[int]bool)
	var slides []int
	hasUnassigned := false

	for _, s := range segments {
		if s.Slide == 0 {
			hasUnassigned = true
			continue
		}
		if !seen[s.Slide] {
			seen[s.Slide] = true
			slides = append(slides, s.Slide)
		}
	}

	sort.Ints(slides)
	if hasUnassigned {
		slides = append(slides, 0)
	}
	return slides
}

func slideLabel(slide int) string {
	if slide == 0 {
		return "Unassigned"
	}
	return fmt.Sprintf("Slide %d", slide)
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
