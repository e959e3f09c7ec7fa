package workflow

import "errors"

var (
	// ErrNilConfig indicates New was called without a configuration.
	ErrNilConfig = errors.New("workflow: config is nil")

	// ErrNoStructures indicates Run was given an empty batch.
	ErrNoStructures = errors.New("workflow: no input structures")
)

const (
	methodNew      = "New"
	methodRun      = "Run"
	methodClassify = "Classify"
)
