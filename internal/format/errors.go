package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrUnsupported indicates a recognized structure with an unhandled version.
	ErrUnsupported = errors.New("format: unsupported version")
	// ErrBadCLSID indicates a category group member with a class identifier
	// other than the shell link CLSID.
	ErrBadCLSID = errors.New("format: unexpected class identifier")
)
