// Package common defines shared sentinel errors. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// ErrNoSession marks an action attempted without an active session.
	// It is handled locally (notice to the user) and never reaches the
	// network.
	ErrNoSession = errors.New("no active session")
)
