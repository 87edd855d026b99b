package port

import "errors"

// Sentinel errors used across services and handlers.
var (
	ErrBookNotFound     = errors.New("book not found")
	ErrArtifactCorrupt  = errors.New("artifact corrupt")
	ErrArtifactMismatch = errors.New("catalog and feature row counts differ")
)
