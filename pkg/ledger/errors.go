package ledger

// ValidationError reports a malformed numeric input. Field identifies the
// offending value so the caller can return a user-correctable message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// DivisionByZeroError reports a weighted-average computation whose remaining
// weight is exactly zero. It is kept distinct from ValidationError because it
// signals contradictory data entry, not a malformed value.
type DivisionByZeroError struct {
	Field string
}

func (e *DivisionByZeroError) Error() string {
	return e.Field + " is zero"
}
