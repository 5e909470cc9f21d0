package stage

// Status represents the workflow state of one stage of an order.
// A stage is Pending until its workflow screen is submitted, after which
// it is Completed. A stage with no persisted record at all is reported as
// Pending with empty data.
type Status int

const (
	// StatusPending means the stage has not been completed yet.
	StatusPending Status = iota

	// StatusCompleted means the stage's workflow step was submitted.
	StatusCompleted
)

// ParseStatus converts the store's string form to a Status.
// Anything other than "Completed" is treated as Pending.
func ParseStatus(raw string) Status {
	if raw == "Completed" || raw == "completed" {
		return StatusCompleted
	}
	return StatusPending
}

// IsCompleted reports whether the stage's workflow step was submitted.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if s == StatusCompleted {
		return "Completed"
	}
	return "Pending"
}
