package ample

import "errors"

var (
	// ErrTransport indicates a network or HTTP-level failure.
	ErrTransport = errors.New("ample: transport failure")

	// ErrFormat indicates a response body that could not be parsed as expected.
	ErrFormat = errors.New("ample: malformed response")

	// ErrUnsupportedFormat indicates an export format outside the supported
	// set, or one the remote host refuses to serve.
	ErrUnsupportedFormat = errors.New("ample: unsupported export format")
)
