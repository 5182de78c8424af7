package logger

// LogEntry is one recorded event. Exactly one of the event fields is set.
type LogEntry struct {
	// TimestampMicros is the entry's time in microseconds since the epoch.
	TimestampMicros int64 `json:"timestamp_micros"`
	// SessionID ties together entries from one playground session.
	SessionID string `json:"session_id,omitempty"`

	LineParsed    *LineParsed    `json:"line_parsed,omitempty"`
	JobAdded      *JobAdded      `json:"job_added,omitempty"`
	JobRemoved    *JobRemoved    `json:"job_removed,omitempty"`
	LintReported  *LintReported  `json:"lint_reported,omitempty"`
	MetaCommand   *MetaCommand   `json:"meta_command,omitempty"`
	SessionClosed *SessionClosed `json:"session_closed,omitempty"`
}

// Event is implemented by every event payload type.
type Event interface {
	isEvent()
}

// Event returns the payload set on the entry, or nil for entries written by
// a newer tool than the reader.
func (le *LogEntry) Event() Event {
	switch {
	case le.LineParsed != nil:
		return le.LineParsed
	case le.JobAdded != nil:
		return le.JobAdded
	case le.JobRemoved != nil:
		return le.JobRemoved
	case le.LintReported != nil:
		return le.LintReported
	case le.MetaCommand != nil:
		return le.MetaCommand
	case le.SessionClosed != nil:
		return le.SessionClosed
	}
	return nil
}

func (le *LogEntry) setEvent(event Event) {
	switch ev := event.(type) {
	case *LineParsed:
		le.LineParsed = ev
	case *JobAdded:
		le.JobAdded = ev
	case *JobRemoved:
		le.JobRemoved = ev
	case *LintReported:
		le.LintReported = ev
	case *MetaCommand:
		le.MetaCommand = ev
	case *SessionClosed:
		le.SessionClosed = ev
	}
}

// LineParsed records one line turned into a pipeline.
type LineParsed struct {
	// Raw is the trimmed input line.
	Raw string `json:"raw"`
	// Stages is the number of processes in the pipeline.
	Stages int `json:"stages"`
	// Pipes is the number of pipe connections between stages.
	Pipes int `json:"pipes"`
	// Foreground is false for backgrounded lines.
	Foreground bool `json:"foreground"`
}

// JobAdded records a pipeline registered in the job table.
type JobAdded struct {
	JobID int `json:"job_id"`
	// Command is the first stage's command name.
	Command string `json:"command,omitempty"`
	Stages  int    `json:"stages"`
}

// JobRemoved records a pipeline dropped from the job table.
type JobRemoved struct {
	JobID int `json:"job_id"`
}

// LintReported records findings for one line.
type LintReported struct {
	Raw   string   `json:"raw"`
	Codes []string `json:"codes"`
}

// MetaCommand records a playground meta command invocation.
type MetaCommand struct {
	Name string `json:"name"`
}

// SessionClosed records the end of a playground session.
type SessionClosed struct {
	LinesParsed int `json:"lines_parsed"`
}

func (*LineParsed) isEvent()    {}
func (*JobAdded) isEvent()      {}
func (*JobRemoved) isEvent()    {}
func (*LintReported) isEvent()  {}
func (*MetaCommand) isEvent()   {}
func (*SessionClosed) isEvent() {}
