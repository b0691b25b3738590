package codec

import "errors"

// ErrFormat reports structurally malformed roster input: a bad header,
// a row with the wrong column count, or a numeric cell that does not
// parse as a base-10 integer. Readers that fail with it return nothing,
// so callers can keep their previous contents.
var ErrFormat = errors.New("malformed roster data")
