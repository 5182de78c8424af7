package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// ReadJSONLinesLog parses a newline delimited JSON log.
func ReadJSONLinesLog(r io.Reader, handler func(le *LogEntry)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var logEntry LogEntry
		if err := decoder.Decode(&logEntry); err != nil {
			return err
		}

		handler(&logEntry)
	}
	return nil
}

// Report holds statistics about the logged events.
type Report struct {
	LogEntries     int        `json:"log_entries"`
	InvalidEntries StrCounter `json:"unknown_log_entries,omitempty"`

	Lines       LineReport        `json:"line_report"`
	Jobs        JobReport         `json:"job_report"`
	Lint        LintReport        `json:"lint_report"`
	MetaCommand MetaCommandReport `json:"meta_command_report"`
	Sessions    SessionReport     `json:"session_report"`
}

func (r *Report) Update(le *LogEntry) {
	r.LogEntries++

	switch event := le.Event().(type) {
	case *LineParsed:
		r.Lines.update(event)
	case *JobAdded:
		r.Jobs.updateAdded(event)
	case *JobRemoved:
		r.Jobs.updateRemoved(event)
	case *LintReported:
		r.Lint.update(event)
	case *MetaCommand:
		r.MetaCommand.update(event)
	case *SessionClosed:
		r.Sessions.update(event)
	default:
		r.InvalidEntries.Increment(fmt.Sprintf("%T", event))
	}
}

type LineReport struct {
	Total      int `json:"total"`
	Foreground int `json:"foreground"`
	Background int `json:"background"`
	// Pipeline sizes and their counts.
	StageCounts StrCounter `json:"stage_counts"`
}

func (r *LineReport) update(lp *LineParsed) {
	r.Total++
	if lp.Foreground {
		r.Foreground++
	} else {
		r.Background++
	}
	r.StageCounts.Increment(strconv.Itoa(lp.Stages))
}

type JobReport struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
	// First stage command names and their counts.
	CommandNames StrCounter `json:"command_names"`
}

func (r *JobReport) updateAdded(ja *JobAdded) {
	r.Added++
	if ja.Command != "" {
		r.CommandNames.Increment(ja.Command)
	}
}

func (r *JobReport) updateRemoved(jr *JobRemoved) {
	r.Removed++
}

type LintReport struct {
	// Finding codes and their counts.
	Codes StrCounter `json:"codes"`
}

func (r *LintReport) update(lr *LintReported) {
	for _, code := range lr.Codes {
		r.Codes.Increment(code)
	}
}

type MetaCommandReport struct {
	// Meta command names and their counts.
	Names StrCounter `json:"names"`
}

func (r *MetaCommandReport) update(mc *MetaCommand) {
	r.Names.Increment(mc.Name)
}

type SessionReport struct {
	Closed      int `json:"closed"`
	LinesParsed int `json:"lines_parsed"`
}

func (r *SessionReport) update(sc *SessionClosed) {
	r.Closed++
	r.LinesParsed += sc.LinesParsed
}

// SessionsReport breaks down activity by playground session.
type SessionsReport struct {
	// Map of sessionID -> session activity.
	sessions map[string]*Session
}

// Session summarizes one playground session's activity.
type Session struct {
	LogEntries int `json:"log_entries"`

	Lines        []string `json:"lines"`
	Jobs         []string `json:"jobs"`
	MetaCommands []string `json:"meta_commands"`
	LintFindings int      `json:"lint_findings"`
}

func (s *Session) Update(le *LogEntry) {
	s.LogEntries++

	switch event := le.Event().(type) {
	case *LineParsed:
		s.Lines = append(s.Lines, event.Raw)
	case *JobAdded:
		s.Jobs = append(s.Jobs, fmt.Sprintf("[%d] %s", event.JobID, event.Command))
	case *LintReported:
		s.LintFindings += len(event.Codes)
	case *MetaCommand:
		s.MetaCommands = append(s.MetaCommands, event.Name)
	}
}

func (s *SessionsReport) init() {
	if s.sessions == nil {
		s.sessions = make(map[string]*Session)
	}
}

// MarshalJSON implemnts custom JSON marshaler.
func (s *SessionsReport) MarshalJSON() ([]byte, error) {
	s.init()

	return json.Marshal(s.sessions)
}

func (s *SessionsReport) Update(le *LogEntry) {
	s.init()

	sessionID := le.SessionID
	if sessionID == "" {
		return
	}
	session, ok := s.sessions[sessionID]
	if !ok {
		session = &Session{}
		s.sessions[sessionID] = session
	}

	session.Update(le)
}

// StrCounter counts the number of strings seen.
type StrCounter struct {
	internal map[string]int
}

// Increment adds one to the given key.
func (s *StrCounter) Increment(toAdd string) {
	if s.internal == nil {
		s.internal = make(map[string]int)
	}

	s.internal[toAdd]++
}

// Count returns the count for the given key.
func (s *StrCounter) Count(key string) int {
	return s.internal[key]
}

// MarshalJSON implemnts custom JSON marshaler.
func (s StrCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.internal)
}
