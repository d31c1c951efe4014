package model

// ValidationError reports a payload field that fails its declared
// constraint. It is raised before any store operation executes and maps to
// an HTTP 422 at the transport layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

func intRef(v int) *int {
	return &v
}
