package segment

import (
	"encoding/json"
	"fmt"
	"os"
)

// Convert turns raw engine output into working segments: silence entries are
// dropped and the remaining entries get dense sequential ids starting at 1,
// regardless of the ids the engine assigned.
func Convert(raw []RawSegment) []Segment {
	segments := make([]Segment, 0, len(raw))
	for _, r := range raw {
		if r.Type == TypeSilence {
			continue
		}
		segments = append(segments, Segment{
			ID:          len(segments) + 1,
			Text:        r.Text,
			Translation: r.Translation,
			Slide:       r.Slide,
		})
	}
	return segments
}

// ReadRaw loads a raw engine segment file.
func ReadRaw(path string) ([]RawSegment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read segment file: %w", err)
	}
	var raw []RawSegment
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse segment file: %w", err)
	}
	return raw, nil
}

// ReadWorking loads a working-form segment file.
func ReadWorking(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read segment file: %w", err)
	}
	var segments []Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("parse segment file: %w", err)
	}
	return segments, nil
}

// Write persists the full segment list. Saves are always whole-file; there is
// no delta format.
func Write(path string, segments []Segment) error {
	data, err := json.MarshalIndent(segments, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal segments: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write segment file: %w", err)
	}
	return nil
}

// Edit replaces the text of the segment with the given id and returns the
// updated list. The caller persists immediately after a successful edit.
func Edit(segments []Segment, id int, text string) ([]Segment, error) {
	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		if out[i].ID == id {
			out[i].Text = text
			return out, nil
		}
	}
	return nil, fmt.Errorf("segment %d not found", id)
}

// Assign places the segment with the given id on a slide. Slide 0 detaches the
// segment from any slide; segments are never deleted, only unassigned.
func Assign(segments []Segment, id, slide int) ([]Segment, error) {
	if slide < 0 {
		return nil, fmt.Errorf("slide index must be >= 0, got %d", slide)
	}
	out := make([]Segment, len(segments))
	copy(out, segments)
	for i := range out {
		if out[i].ID == id {
			out[i].Slide = slide
			return out, nil
		}
	}
	return nil, fmt.Errorf("segment %d not found", id)
}
