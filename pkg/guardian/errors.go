package guardian

import "errors"

var (
	errMissingIFO      = errors.New("ifo is required")
	errNoNodes         = errors.New("at least one node is required")
	errMissingNodeName = errors.New("node name is required")
	errNoStates        = errors.New("node has no states configured")
	errNoEpochs        = errors.New("at least one epoch is required")
	errInvalidEpoch    = errors.New("epoch start must precede its end")
)
