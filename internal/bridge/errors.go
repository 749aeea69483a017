package bridge

import "errors"

var (
	// ErrNotConfigured is returned when the bridge host or username is missing.
	ErrNotConfigured = errors.New("bridge is not configured")

	// ErrUnauthorized is returned when the bridge rejects the username.
	ErrUnauthorized = errors.New("bridge rejected the username")

	// ErrUnreachable is returned when the bridge cannot be contacted.
	ErrUnreachable = errors.New("bridge is unreachable")

	// ErrBadResponse is returned when the bridge answers with an unexpected payload.
	ErrBadResponse = errors.New("unexpected bridge response")
)
