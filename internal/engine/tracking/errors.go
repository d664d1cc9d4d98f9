package tracking

import "errors"

// ErrUnknownDetector indicates a detector name that NewDetector does not recognize.
var ErrUnknownDetector = errors.New("unknown change detector")
