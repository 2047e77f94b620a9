package domain

// ViolationLevel grades a finding by severity.
type ViolationLevel string

const (
	LevelInfo      ViolationLevel = "info"
	LevelWarning   ViolationLevel = "warning"
	LevelViolation ViolationLevel = "violation"
)

// Violation is a single rule finding against the logged timeline.
// ActivityID points at the activity that triggered it, when one does.
type Violation struct {
	Level      ViolationLevel
	Message    string
	ActivityID string
}

// Suggestion is the single recommended next action shown on the status
// dashboard.
type Suggestion struct {
	Level   ViolationLevel
	Message string
}
