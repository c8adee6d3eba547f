package project

import "time"

// SlideRef points at one imported slide image. Slides are keyed by file name:
// re-importing a file with a known name overwrites its entry in place.
type SlideRef struct {
	FileName string `json:"fileName"`
	Path     string `json:"path"`
}

// Project is the descriptor persisted as project.json in the project
// directory. The directory is the sole durable owner of project data.
type Project struct {
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedOn time.Time  `json:"updatedOn"`
	Path      string     `json:"path"`
	Slides    []SlideRef `json:"slides"`
}

// mergeSlides folds newly imported refs into the existing list, de-duplicating
// by file name while preserving the position of first-seen entries.
func mergeSlides(existing, added []SlideRef) []SlideRef {
	merged := make([]SlideRef, len(existing))
	copy(merged, existing)

	index := make(map[string]int, len(merged))
	for i, s := range merged {
		index[s.FileName] = i
	}

	for _, s := range added {
		if i, ok := index[s.FileName]; ok {
			merged[i] = s
			continue
		}
		index[s.FileName] = len(merged)
		merged = append(merged, s)
	}

	return merged
}
