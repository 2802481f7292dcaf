// Package types defines the public data model for decoded jumplist files
// and the classified error type shared across the module. It has no
// dependencies on the decoding machinery so downstream consumers can import
// it without pulling in the parsers.
package types
