package aisdk

import "strings"

// ValidationError reports a single misconfigured component.
type ValidationError struct {
	Component string // "AI", "VectorStore", "Web3", "Messaging", "DataStorage"
	Err       error
}

func (e ValidationError) Error() string {
	return e.Component + ": " + e.Err.Error()
}

func (e ValidationError) Unwrap() error { return e.Err }

// ValidationErrors aggregates validation failures across components so
// callers can tell exactly which integrations are misconfigured.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}
