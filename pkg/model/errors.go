package model

import "errors"

var (
	// Invalid settings or an unsatisfiable request, reported before enumeration starts
	ErrConfiguration = errors.New("invalid configuration")
	// An input record that cannot be turned into a session, exam time or course
	ErrMalformedInput = errors.New("malformed input")
)
