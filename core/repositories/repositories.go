// Package repositories holds what every entity repository shares.
package repositories

import "errors"

// ErrNotFound is returned (wrapped) when a record id does not exist.
var ErrNotFound = errors.New("record not found")
