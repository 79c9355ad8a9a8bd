package repo

import "errors"

// ErrNotFound is returned when a lookup by id or email matches nothing.
var ErrNotFound = errors.New("not found")
