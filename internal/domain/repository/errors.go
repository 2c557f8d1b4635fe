package repository

import "errors"

// ErrNotFound is returned by repository implementations when a lookup
// matches no row.
var ErrNotFound = errors.New("not found")
