package domain

import "errors"

// ErrUserNotFound reports that the requested username does not exist upstream.
// It is surfaced to callers unchanged rather than masked by a fallback.
var ErrUserNotFound = errors.New("user not found")
