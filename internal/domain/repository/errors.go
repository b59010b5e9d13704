package repository

import "errors"

// ErrNotFound is returned by lookups that matched no document.
var ErrNotFound = errors.New("not found")
