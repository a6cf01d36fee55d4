package timeseries

import "errors"

var (
	// ErrMissingChannel reports that a required channel could not be
	// retrieved for an epoch.
	ErrMissingChannel = errors.New("channel not available")

	errEmptyEpoch = errors.New("epoch has no samples")
)
