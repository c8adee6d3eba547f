package segment

import (
	"path/filepath"
	"testing"
)

func TestConvertDropsSilence(t *testing.T) {
	raw := []RawSegment{
		{ID: 0, Type: TypeSilence, Start: 0, End: 1.5},
		{ID: 1, Type: "text", Text: "foo"},
	}

	got := Convert(raw)
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if got[0].ID != 1 {
		t.Errorf("ID = %d, want 1", got[0].ID)
	}
	if got[0].Text != "foo" {
		t.Errorf("Text = %q, want foo", got[0].Text)
	}
}

func TestConvertDenseIDs(t *testing.T) {
	raw := []RawSegment{
		{ID: 7, Type: "text", Text: "a"},
		{ID: 2, Type: TypeSilence},
		{ID: 99, Type: "text", Text: "b"},
		{ID: 0, Type: TypeSilence},
		{ID: 41, Type: "text", Text: "c"},
	}

	got := Convert(raw)
	if len(got) != 3 {
		t.Fatalf("got %d segments, want 3", len(got))
	}
	for i, seg := range got {
		if seg.ID != i+1 {
			t.Errorf("segment %d has ID %d, want %d", i, seg.ID, i+1)
		}
	}
}

func TestConvertEmpty(t *testing.T) {
	if got := Convert(nil); len(got) != 0 {
		t.Errorf("Convert(nil) = %v, want empty", got)
	}
}

func TestEdit(t *testing.T) {
	segments := []Segment{
		{ID: 1, Text: "one"},
		{ID: 2, Text: "two"},
	}

	updated, err := Edit(segments, 2, "corrected")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if updated[1].Text != "corrected" {
		t.Errorf("Text = %q, want corrected", updated[1].Text)
	}
	if segments[1].Text != "two" {
		t.Error("Edit() mutated the input slice")
	}

	if _, err := Edit(segments, 9, "x"); err == nil {
		t.Error("Edit() with unknown id should fail")
	}
}

func TestAssign(t *testing.T) {
	segments := []Segment{{ID: 1, Text: "one", Slide: 3}}

	updated, err := Assign(segments, 1, 0)
	if err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if updated[0].Slide != 0 {
		t.Errorf("Slide = %d, want 0 (unassigned)", updated[0].Slide)
	}
	if len(updated) != 1 {
		t.Error("unassigning must not delete the segment")
	}

	if _, err := Assign(segments, 1, -1); err == nil {
		t.Error("Assign() with negative slide should fail")
	}
}

func TestWriteAndReadWorking(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segments.json")
	segments := []Segment{{ID: 1, Text: "שלום", Translation: "hello", Slide: 2}}

	if err := Write(path, segments); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	got, err := ReadWorking(path)
	if err != nil {
		t.Fatalf("ReadWorking() error = %v", err)
	}
	if len(got) != 1 || got[0].Text != "שלום" || got[0].Slide != 2 {
		t.Errorf("round trip = %+v", got)
	}
}
