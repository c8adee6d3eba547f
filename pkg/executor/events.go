package executor

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EventKind tags the variants of the tool output protocol.
type EventKind int

const (
	// EventProgress carries a percent-complete update.
	EventProgress EventKind = iota
	// EventStatus carries a leveled human-readable status message.
	EventStatus
	// EventLog is any stdout line without a recognized prefix.
	EventLog
)

// Level is the severity attached to a status event.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Event is the internal representation of one line of tool output.
type Event struct {
	Kind    EventKind
	Percent int    // progress events
	Level   Level  // status events
	Message string // status events
	Line    string // log events
}

const (
	progressPrefix = "PROGRESS:"
	statusPrefix   = "STATUS:"
)

type progressPayload struct {
	Percent int `json:"percent"`
}

type statusPayload struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ParseLine decodes one stdout line into an Event. A line with a recognized
// prefix but malformed JSON is reported via the error and downgraded to a log
// event, never fatal.
func ParseLine(line string) (Event, error) {
	switch {
	case strings.HasPrefix(line, progressPrefix):
		var p progressPayload
		if err := json.Unmarshal([]byte(line[len(progressPrefix):]), &p); err != nil {
			return Event{Kind: EventLog, Line: line}, fmt.Errorf("parse progress payload: %w", err)
		}
		return Event{Kind: EventProgress, Percent: p.Percent}, nil

	case strings.HasPrefix(line, statusPrefix):
		var s statusPayload
		if err := json.Unmarshal([]byte(line[len(statusPrefix):]), &s); err != nil {
			return Event{Kind: EventLog, Line: line}, fmt.Errorf("parse status payload: %w", err)
		}
		return Event{Kind: EventStatus, Level: Level(s.Status), Message: s.Message}, nil

	default:
		return Event{Kind: EventLog, Line: line}, nil
	}
}
