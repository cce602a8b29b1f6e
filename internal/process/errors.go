package process

import "errors"

// ErrInvalidArgument is the single error kind raised by this package and by
// the profile calculator. Wrapped values carry the offending field and value;
// callers test with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
