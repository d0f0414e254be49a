package event

import "errors"

// ErrMalformed indicates a recorded event line could not be decoded.
var ErrMalformed = errors.New("malformed event")
