package storage

import "errors"

// Storage errors
var (
	// ErrMalformedSnapshot indicates the stored value could not be decoded into a valid board
	ErrMalformedSnapshot = errors.New("malformed board snapshot")

	// ErrUnsupportedVersion indicates the stored value was written by a newer schema
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrUnknownBackend indicates an unrecognised storage backend name
	ErrUnknownBackend = errors.New("unknown storage backend")
)
