package core

import "errors"

// ErrSpecNotFound is returned when the OpenAPI document is missing or
// unreadable. Commands should treat this as fatal and exit nonzero.
var ErrSpecNotFound = errors.New("spec not found")

// ErrSpecInvalid is returned when the document parses but fails OpenAPI
// grammar validation. The wrapping error carries the validator's diagnostic,
// including the offending path within the document.
var ErrSpecInvalid = errors.New("spec invalid")

// ErrWriteFailure is returned when the viewer bundle cannot be written.
// Prior output is left untouched when this is reported.
var ErrWriteFailure = errors.New("write failure")
