package payroll

import "errors"

// ErrUnknownPayPolicy is returned when a worker's gender maps to no pay
// policy. This is a data problem the caller must surface, not silently
// default away.
var ErrUnknownPayPolicy = errors.New("no pay policy for worker gender")
