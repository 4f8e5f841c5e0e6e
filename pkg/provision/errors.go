package provision

import "errors"

var (
	// ErrNoAccountKeys is returned when the storage account lists no access keys
	ErrNoAccountKeys = errors.New("storage account has no access keys")
	// ErrInterrupted is returned when the run is interrupted while waiting for confirmation
	ErrInterrupted = errors.New("interrupted while waiting for confirmation")
)
