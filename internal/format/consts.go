// Package format houses low-level decoders for the Windows Jumplist on-disk
// structures. The goal is to keep the parsing focused, allocation-free where
// possible, and independent from the public API so higher-level packages can
// orchestrate the data in a more ergonomic form.
package format

var (
	// CFBSignature is the eight-byte magic at the start of every compound
	// file (structured storage) container. AutomaticDestinations jumplists
	// are CFB containers.
	// Layout:
	//   0x00  0xD0 0xCF 0x11 0xE0 0xA1 0xB1 0x1A 0xE1
	CFBSignature = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

	// ShellLinkCLSID is the on-disk (mixed-endian) class identifier
	// 00021401-0000-0000-c000-000000000046 that precedes every shell link
	// blob inside a CustomDestinations category group and opens every
	// shell link header.
	ShellLinkCLSID = []byte{
		0x01, 0x14, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46,
	}
)

const (
	// DestListStreamName is the metadata stream inside an
	// AutomaticDestinations container.
	DestListStreamName = "DestList"

	// DestListHeaderSize is the fixed size of the DestList stream header.
	//
	//	Offset  Size  Description
	//	------  ----  --------------------------------------------------
	//	 0x00    4    Format version (1 = Win7/8, 3/4 = Win10/11)
	//	 0x04    4    Number of entries
	//	 0x08    4    Number of pinned entries
	//	 0x0C    4    Unknown (float)
	//	 0x10    4    Last issued entry number
	//	 0x14    4    Unknown
	//	 0x18    4    Last revision number
	//	 0x1C    4    Unknown
	DestListHeaderSize = 32

	// DestListEntryFixedSize is the size of the fixed prefix of every
	// DestList entry record, common to all known format versions.
	//
	//	Offset  Size  Description
	//	------  ----  --------------------------------------------------
	//	 0x00    8    Checksum (CRC-64 over the record, not validated)
	//	 0x08   16    Volume droid
	//	 0x18   16    File droid
	//	 0x28   16    Birth volume droid
	//	 0x38   16    Birth file droid
	//	 0x48   16    Hostname (code page, NUL padded)
	//	 0x58    4    Entry number (stream name in hex)
	//	 0x5C    4    Unknown
	//	 0x60    4    Access count (float)
	//	 0x64    8    Last modification time (FILETIME)
	//	 0x6C    4    Pin status (0xFFFFFFFF = not pinned)
	DestListEntryFixedSize = 112

	// DestListEntryV3Extra and DestListEntryV3Trailer are the additional
	// bytes version 3+ entries carry before the counted path string and
	// after it respectively.
	DestListEntryV3Extra   = 16
	DestListEntryV3Trailer = 4

	// DestListHostnameSize is the fixed width of the hostname field.
	DestListHostnameSize = 16

	// PinStatusNone is the pin field value of an unpinned entry. Any other
	// value is the entry's position in the pinned list.
	PinStatusNone = 0xFFFFFFFF

	// CustDestHeaderSize is the fixed size of a CustomDestinations file
	// header.
	//
	//	Offset  Size  Description
	//	------  ----  --------------------------------------------------
	//	 0x00    4    Format version (always 2)
	//	 0x04    4    Number of categories
	//	 0x08    4    Reserved (observed 0)
	CustDestHeaderSize = 12

	// CustDestVersion is the only CustomDestinations format version ever
	// observed in the wild.
	CustDestVersion = 2

	// CustDestSeparator terminates every category in a CustomDestinations
	// file; the final one doubles as the end-of-file footer.
	CustDestSeparator = 0xBABFFBAB

	// GUIDSize is the on-disk size of a Windows GUID.
	GUIDSize = 16
)

// DestListVersion identifies the DestList record layout in use. The layout
// is a fixture-driven contract: Windows never documented it, so the variants
// here reflect the sample corpus (Win7 through Win11).
type DestListVersion uint32

const (
	// DestListV1 is the Windows 7/8 layout: the fixed prefix is followed
	// directly by the counted UTF-16 path.
	DestListV1 DestListVersion = 1
	// DestListV3 is the Windows 10 layout: 16 extra bytes precede the
	// counted UTF-16 path and 4 trailing bytes follow it.
	DestListV3 DestListVersion = 3
	// DestListV4 is the Windows 10/11 layout, wire-identical to V3.
	DestListV4 DestListVersion = 4
)

// Known reports whether v is a layout this package decodes.
func (v DestListVersion) Known() bool {
	return v == DestListV1 || v == DestListV3 || v == DestListV4
}

// extended reports whether the record carries the 16 pre-path and 4
// post-path bytes introduced after V1. The counted path itself is common to
// every layout.
func (v DestListVersion) extended() bool {
	return v != DestListV1
}
