package themingapi

import "errors"

var (
	// ErrInvalidArgument reports a malformed configuration value, such as an
	// import prefix that does not end in a slash.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidImport reports a `@use` statement whose namespace could not be
	// derived from an `as` clause or from the imported path.
	ErrInvalidImport = errors.New("invalid import")

	// ErrInvalidState reports a rename rule that would not replace every match.
	// It guards pattern construction and never depends on file content.
	ErrInvalidState = errors.New("invalid state")
)
