package format

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuapare/jumpkit/internal/buf"
)

// DestListHeader captures the fields of the DestList stream header we act
// on. See DestListHeaderSize for the full layout.
type DestListHeader struct {
	Version      DestListVersion
	EntryCount   uint32
	PinnedCount  uint32
	LastEntry    uint32
	LastRevision uint32
}

// ParseDestListHeader validates and extracts the DestList stream header.
// The version must be a known layout; everything past it is decoded per
// that layout, so an unknown version is format-breaking rather than a data
// error.
func ParseDestListHeader(b []byte) (DestListHeader, error) {
	if len(b) < DestListHeaderSize {
		return DestListHeader{}, fmt.Errorf("destlist header: %w", ErrTruncated)
	}
	v := DestListVersion(buf.U32LE(b))
	if !v.Known() {
		return DestListHeader{}, fmt.Errorf("destlist header: version %d: %w", v, ErrUnsupported)
	}
	return DestListHeader{
		Version:      v,
		EntryCount:   buf.U32LE(b[0x04:]),
		PinnedCount:  buf.U32LE(b[0x08:]),
		LastEntry:    buf.U32LE(b[0x10:]),
		LastRevision: buf.U32LE(b[0x18:]),
	}, nil
}

// DestListEntry is one decoded DestList record. The metadata fields only;
// the shell link blob it references lives in a sibling stream named by
// StreamName.
type DestListEntry struct {
	Checksum         uint64
	VolumeDroid      uuid.UUID
	FileDroid        uuid.UUID
	BirthVolumeDroid uuid.UUID
	BirthFileDroid   uuid.UUID
	Hostname         string
	EntryNumber      uint32
	AccessCount      uint32
	LastModifiedRaw  uint64
	PinStatus        uint32
	Path             string
}

// Pinned reports whether the entry is pinned to the jumplist.
func (e *DestListEntry) Pinned() bool { return e.PinStatus != PinStatusNone }

// StreamName returns the name of the CFB stream carrying this entry's
// shell link blob: the entry number in lowercase hex.
func (e *DestListEntry) StreamName() string {
	return fmt.Sprintf("%x", e.EntryNumber)
}

// ParseDestListEntry decodes one entry record from the front of b using the
// layout selected by version, returning the record and the bytes consumed.
// The consumed count is the only way to locate the next record: the suffix
// is variable length and carries no offset table.
func ParseDestListEntry(b []byte, version DestListVersion) (DestListEntry, int, error) {
	if len(b) < DestListEntryFixedSize {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry: %w", ErrTruncated)
	}

	var e DestListEntry
	var err error
	e.Checksum = buf.U64LE(b)
	if e.VolumeDroid, err = GUIDFromWindows(b[0x08:]); err != nil {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry volume droid: %w", err)
	}
	if e.FileDroid, err = GUIDFromWindows(b[0x18:]); err != nil {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry file droid: %w", err)
	}
	if e.BirthVolumeDroid, err = GUIDFromWindows(b[0x28:]); err != nil {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry birth volume droid: %w", err)
	}
	if e.BirthFileDroid, err = GUIDFromWindows(b[0x38:]); err != nil {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry birth file droid: %w", err)
	}
	if e.Hostname, err = CodePageString(b[0x48 : 0x48+DestListHostnameSize]); err != nil {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry hostname: %w", err)
	}
	e.EntryNumber = buf.U32LE(b[0x58:])
	if c := buf.F32LE(b[0x60:]); c > 0 {
		e.AccessCount = uint32(c + 0.5)
	}
	e.LastModifiedRaw = buf.U64LE(b[0x64:])
	e.PinStatus = buf.U32LE(b[0x6C:])

	off := DestListEntryFixedSize
	if version.extended() {
		if !buf.Has(b, off, DestListEntryV3Extra) {
			return DestListEntry{}, 0, fmt.Errorf("destlist entry extras: %w", ErrTruncated)
		}
		off += DestListEntryV3Extra
	}
	if !buf.Has(b, off, 2) {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry path size: %w", ErrTruncated)
	}
	chars := int(buf.U16LE(b[off:]))
	off += 2
	path, n, err := UTF16Counted(b[off:], chars)
	if err != nil {
		return DestListEntry{}, 0, fmt.Errorf("destlist entry path: %w", err)
	}
	e.Path = path
	off += n
	if version.extended() {
		if !buf.Has(b, off, DestListEntryV3Trailer) {
			return DestListEntry{}, 0, fmt.Errorf("destlist entry trailer: %w", ErrTruncated)
		}
		off += DestListEntryV3Trailer
	}
	return e, off, nil
}
