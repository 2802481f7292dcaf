package testutil

import (
	"github.com/google/uuid"

	"github.com/joshuapare/jumpkit/internal/buf"
	"github.com/joshuapare/jumpkit/internal/format"
)

// DestListEntrySpec describes one synthetic DestList record.
type DestListEntrySpec struct {
	EntryNumber  uint32
	Hostname     string
	Path         string
	Pinned       bool
	PinOrder     uint32
	AccessCount  uint32
	LastModified uint64
	Droids       [4]uuid.UUID
}

func appendUTF16(out []byte, s string) []byte {
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
	}
	return out
}

// BuildDestList encodes a DestList stream: header plus one record per spec.
// The declared entry count can be overridden via declared (pass -1 to use
// the real count) to build count-mismatch fixtures.
func BuildDestList(version format.DestListVersion, entries []DestListEntrySpec, declared int) []byte {
	if declared < 0 {
		declared = len(entries)
	}
	var pinned, last uint32
	for _, e := range entries {
		if e.Pinned {
			pinned++
		}
		if e.EntryNumber > last {
			last = e.EntryNumber
		}
	}

	out := make([]byte, format.DestListHeaderSize)
	buf.PutU32(out, 0x00, uint32(version))
	buf.PutU32(out, 0x04, uint32(declared))
	buf.PutU32(out, 0x08, pinned)
	buf.PutU32(out, 0x10, last)
	buf.PutU32(out, 0x18, 1)

	for _, e := range entries {
		out = append(out, BuildDestListEntry(version, e)...)
	}
	return out
}

// BuildDestListEntry encodes a single DestList record for version.
func BuildDestListEntry(version format.DestListVersion, e DestListEntrySpec) []byte {
	rec := make([]byte, format.DestListEntryFixedSize)
	for i, d := range e.Droids {
		disk := format.GUIDToWindows(d)
		copy(rec[0x08+i*16:], disk[:])
	}
	copy(rec[0x48:0x48+format.DestListHostnameSize], e.Hostname)
	buf.PutU32(rec, 0x58, e.EntryNumber)
	buf.PutF32(rec, 0x60, float32(e.AccessCount))
	buf.PutU64(rec, 0x64, e.LastModified)
	if e.Pinned {
		buf.PutU32(rec, 0x6C, e.PinOrder)
	} else {
		buf.PutU32(rec, 0x6C, format.PinStatusNone)
	}

	if version != format.DestListV1 {
		rec = append(rec, make([]byte, format.DestListEntryV3Extra)...)
	}
	chars := 0
	for range e.Path {
		chars++
	}
	rec = append(rec, byte(chars), byte(chars>>8))
	rec = appendUTF16(rec, e.Path)
	if version != format.DestListV1 {
		rec = append(rec, make([]byte, format.DestListEntryV3Trailer)...)
	}
	return rec
}

// CategorySpec describes one synthetic CustomDestinations category.
type CategorySpec struct {
	Type    format.CategoryType
	Name    string
	KnownID int32
	// Blobs are prebuilt shell link blobs; each is emitted behind the
	// shell link CLSID.
	Blobs [][]byte
	// RawCLSID overrides the per-blob class identifier when set.
	RawCLSID []byte
}

// BuildCustom encodes a CustomDestinations file from the given categories,
// separator-terminated as written by Windows.
func BuildCustom(cats []CategorySpec) []byte {
	out := make([]byte, format.CustDestHeaderSize)
	buf.PutU32(out, 0x00, format.CustDestVersion)
	buf.PutU32(out, 0x04, uint32(len(cats)))

	for _, c := range cats {
		out = append(out, 0, 0, 0, 0)
		buf.PutU32(out, len(out)-4, uint32(c.Type))
		switch c.Type {
		case format.CategoryCustom:
			chars := 0
			for range c.Name {
				chars++
			}
			out = append(out, byte(chars), byte(chars>>8))
			out = appendUTF16(out, c.Name)
			out = append(out, 0, 0, 0, 0)
			buf.PutU32(out, len(out)-4, uint32(len(c.Blobs)))
		case format.CategoryKnown:
			out = append(out, 0, 0, 0, 0)
			buf.PutU32(out, len(out)-4, uint32(c.KnownID))
		case format.CategoryTask:
			out = append(out, 0, 0, 0, 0)
			buf.PutU32(out, len(out)-4, uint32(len(c.Blobs)))
		}
		for _, blob := range c.Blobs {
			clsid := c.RawCLSID
			if clsid == nil {
				clsid = format.ShellLinkCLSID
			}
			out = append(out, clsid...)
			out = append(out, blob...)
		}
		out = append(out, 0, 0, 0, 0)
		buf.PutU32(out, len(out)-4, format.CustDestSeparator)
	}
	return out
}
