package segment

// TypeSilence marks raw engine entries that carry no speech. Dropped during
// conversion to the working form.
const TypeSilence = "silence"

// RawSegment is one entry of the speech engine's output file.
type RawSegment struct {
	ID          int     `json:"id"`
	Text        string  `json:"text"`
	Translation string  `json:"en"`
	Start       float64 `json:"start"`
	End         float64 `json:"end"`
	Slide       int     `json:"slide"`
	Type        string  `json:"type"`
}

// Segment is the working form used by correction, translation and slide
// assignment. IDs are dense and 1-based over the filtered set; Slide is a
// 1-based position into the project's image list, 0 meaning unassigned.
type Segment struct {
	ID                int     `json:"id"`
	Text              string  `json:"text"`
	Translation       string  `json:"translation"`
	Slide             int     `json:"slide"`
	DelayStartSeconds float64 `json:"delayStartSeconds"`
	DelayEndSeconds   float64 `json:"delayEndSeconds"`
}
