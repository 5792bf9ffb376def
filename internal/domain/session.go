package domain

import "time"

// SessionStatus represents where the controller is in a run.
type SessionStatus string

const (
	SessionStatusIdle      SessionStatus = "idle"
	SessionStatusRunning   SessionStatus = "running"
	SessionStatusCompleted SessionStatus = "completed"
)

// SessionState is the mutable state of one controller.
type SessionState struct {
	RunID    string
	Status   SessionStatus
	Progress float64
	Mode     Mode
	Total    time.Duration
	// StartedAt is only meaningful while Running.
	StartedAt time.Time
}

// NewSessionState returns an idle state with no progress.
func NewSessionState() SessionState {
	return SessionState{Status: SessionStatusIdle, Mode: ModeLoop}
}

// IsRunning reports whether a run is in progress.
func (s SessionState) IsRunning() bool {
	return s.Status == SessionStatusRunning
}

// Begin resets progress and records the parameters of a new run.
func (s *SessionState) Begin(runID string, mode Mode, total time.Duration, now time.Time) {
	s.RunID = runID
	s.Status = SessionStatusRunning
	s.Progress = 0
	s.Mode = mode
	s.Total = total
	s.StartedAt = now
}

// Advance publishes a new progress value, never going backwards.
func (s *SessionState) Advance(raw float64) float64 {
	s.Progress = ClampProgress(s.Progress, raw)
	return s.Progress
}

// Complete marks the run as finished.
func (s *SessionState) Complete() {
	s.Status = SessionStatusCompleted
}

// Idle returns to the resting state and clears progress.
func (s *SessionState) Idle() {
	s.Status = SessionStatusIdle
	s.Progress = 0
	s.StartedAt = time.Time{}
}

// DisplayPercent is the whole percentage shown on screen.
func (s SessionState) DisplayPercent() int {
	return int(s.Progress)
}

// GetStatusLabel returns a human-readable label for the status.
func GetStatusLabel(s SessionStatus) string {
	switch s {
	case SessionStatusIdle:
		return "Idle"
	case SessionStatusRunning:
		return "Running"
	case SessionStatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}
