package host

import "errors"

var (
	ErrUnknownMessage   = errors.New("unknown message type")
	ErrMalformedMessage = errors.New("malformed message")
	ErrInvalidQuery     = errors.New("invalid connection parameters")
	ErrServerRunning    = errors.New("server is already running")
)
