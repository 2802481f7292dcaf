package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/jumpkit/internal/buf"
)

// CustDestHeader is the fixed header of a CustomDestinations file. See
// CustDestHeaderSize for the layout.
type CustDestHeader struct {
	Version       uint32
	CategoryCount uint32
	Reserved      uint32
}

// ParseCustDestHeader validates and extracts a CustomDestinations header.
// An unrecognized version is format-breaking: nothing after the header can
// be framed without knowing the layout.
func ParseCustDestHeader(b []byte) (CustDestHeader, error) {
	if len(b) < CustDestHeaderSize {
		return CustDestHeader{}, fmt.Errorf("customdestinations header: %w", ErrTruncated)
	}
	h := CustDestHeader{
		Version:       buf.U32LE(b),
		CategoryCount: buf.U32LE(b[0x04:]),
		Reserved:      buf.U32LE(b[0x08:]),
	}
	if h.Version != CustDestVersion {
		return CustDestHeader{}, fmt.Errorf("customdestinations header: version %d: %w", h.Version, ErrUnsupported)
	}
	return h, nil
}

// CategoryType distinguishes the three CustomDestinations category shapes.
type CategoryType uint32

const (
	// CategoryCustom is an application-defined category: a UTF-16 name
	// followed by a counted group of shell link blobs.
	CategoryCustom CategoryType = 0
	// CategoryKnown is a system category referenced by id (frequent,
	// recent); it carries no embedded blobs.
	CategoryKnown CategoryType = 1
	// CategoryTask is the taskbar task list: an unnamed counted group of
	// shell link blobs.
	CategoryTask CategoryType = 2
)

func (t CategoryType) String() string {
	switch t {
	case CategoryCustom:
		return "custom"
	case CategoryKnown:
		return "known"
	case CategoryTask:
		return "task"
	default:
		return fmt.Sprintf("0x%02X", uint32(t))
	}
}

// Known category identifiers.
const (
	KnownCategoryFrequent int32 = 1
	KnownCategoryRecent   int32 = 2
	KnownCategoryNone     int32 = -1
)

// KnownCategoryName renders a known-category id for output.
func KnownCategoryName(id int32) string {
	switch id {
	case KnownCategoryFrequent:
		return "frequent"
	case KnownCategoryRecent:
		return "recent"
	case KnownCategoryNone:
		return "none"
	default:
		return fmt.Sprintf("%04X", id)
	}
}

// CategoryHeader is the decoded inline header preceding each category's
// blobs.
type CategoryHeader struct {
	Type CategoryType
	// Name is set for CategoryCustom only.
	Name string
	// EntryCount is the number of shell link blobs that follow. Zero for
	// CategoryKnown.
	EntryCount uint32
	// KnownID is set for CategoryKnown only.
	KnownID int32
}

// ParseCategoryHeader decodes one category header from the front of b and
// returns it with the bytes consumed. The blobs themselves follow at the
// returned offset; only the shell link parser can delimit them.
func ParseCategoryHeader(b []byte) (CategoryHeader, int, error) {
	if len(b) < 4 {
		return CategoryHeader{}, 0, fmt.Errorf("category header: %w", ErrTruncated)
	}
	h := CategoryHeader{Type: CategoryType(buf.U32LE(b))}
	off := 4
	switch h.Type {
	case CategoryCustom:
		if !buf.Has(b, off, 2) {
			return CategoryHeader{}, 0, fmt.Errorf("category name size: %w", ErrTruncated)
		}
		chars := int(buf.U16LE(b[off:]))
		off += 2
		name, n, err := UTF16Counted(b[off:], chars)
		if err != nil {
			return CategoryHeader{}, 0, fmt.Errorf("category name: %w", err)
		}
		h.Name = name
		off += n
		if !buf.Has(b, off, 4) {
			return CategoryHeader{}, 0, fmt.Errorf("category entry count: %w", ErrTruncated)
		}
		h.EntryCount = buf.U32LE(b[off:])
		off += 4
	case CategoryKnown:
		if !buf.Has(b, off, 4) {
			return CategoryHeader{}, 0, fmt.Errorf("category id: %w", ErrTruncated)
		}
		h.KnownID = buf.I32LE(b[off:])
		off += 4
	case CategoryTask:
		if !buf.Has(b, off, 4) {
			return CategoryHeader{}, 0, fmt.Errorf("category entry count: %w", ErrTruncated)
		}
		h.EntryCount = buf.U32LE(b[off:])
		off += 4
	default:
		return CategoryHeader{}, 0, fmt.Errorf("category type %d: %w", uint32(h.Type), ErrSignatureMismatch)
	}
	return h, off, nil
}

// IsSeparator reports whether b opens with the category separator / footer
// signature.
func IsSeparator(b []byte) bool {
	return len(b) >= 4 && buf.U32LE(b) == CustDestSeparator
}

// IsShellLinkCLSID reports whether b opens with the shell link class
// identifier that precedes every category group member.
func IsShellLinkCLSID(b []byte) bool {
	return len(b) >= GUIDSize && bytes.Equal(b[:GUIDSize], ShellLinkCLSID)
}
