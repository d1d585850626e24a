package display

// BindError reports that a required compositor facility is missing: no
// display connection, or no layer-shell support. It is fatal at startup.
type BindError struct {
	Message string
	Cause   error
}

func (e *BindError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *BindError) Unwrap() error {
	return e.Cause
}
