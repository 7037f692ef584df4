package service

import "errors"

// ErrValidation marks a request rejected by field validation. Terminal for the
// request; handlers translate it to a 400.
var ErrValidation = errors.New("validation failed")
