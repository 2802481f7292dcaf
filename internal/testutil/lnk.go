// Package testutil builds synthetic jumplist structures for tests. The
// builders are deliberately independent of the decoders they exercise so a
// round-trip failure points at exactly one side.
package testutil

import (
	"github.com/google/uuid"

	"github.com/joshuapare/jumpkit/internal/buf"
	"github.com/joshuapare/jumpkit/internal/format"
)

// LinkSpec describes a synthetic shell link blob.
type LinkSpec struct {
	LocalBasePath string
	CommonSuffix  string

	Name         string
	RelativePath string
	WorkingDir   string
	Arguments    string
	IconLocation string
	Unicode      bool

	CreationTime uint64
	AccessTime   uint64
	WriteTime    uint64
	FileSize     uint32

	MachineID string
	Droids    [4]uuid.UUID

	// OmitTerminal drops the terminal extra-data block for boundary tests.
	OmitTerminal bool
}

const (
	lnkFlagHasLinkInfo     = 1 << 1
	lnkFlagHasName         = 1 << 2
	lnkFlagHasRelativePath = 1 << 3
	lnkFlagHasWorkingDir   = 1 << 4
	lnkFlagHasArguments    = 1 << 5
	lnkFlagHasIconLocation = 1 << 6
	lnkFlagIsUnicode       = 1 << 7
)

// BuildLink encodes s as a shell link blob.
func BuildLink(s LinkSpec) []byte {
	var flags uint32
	if s.LocalBasePath != "" || s.CommonSuffix != "" {
		flags |= lnkFlagHasLinkInfo
	}
	if s.Name != "" {
		flags |= lnkFlagHasName
	}
	if s.RelativePath != "" {
		flags |= lnkFlagHasRelativePath
	}
	if s.WorkingDir != "" {
		flags |= lnkFlagHasWorkingDir
	}
	if s.Arguments != "" {
		flags |= lnkFlagHasArguments
	}
	if s.IconLocation != "" {
		flags |= lnkFlagHasIconLocation
	}
	if s.Unicode {
		flags |= lnkFlagIsUnicode
	}

	head := make([]byte, 0x4C)
	buf.PutU32(head, 0x00, 0x4C)
	copy(head[0x04:], format.ShellLinkCLSID)
	buf.PutU32(head, 0x14, flags)
	buf.PutU32(head, 0x18, 0x20) // FILE_ATTRIBUTE_ARCHIVE
	buf.PutU64(head, 0x1C, s.CreationTime)
	buf.PutU64(head, 0x24, s.AccessTime)
	buf.PutU64(head, 0x2C, s.WriteTime)
	buf.PutU32(head, 0x34, s.FileSize)

	out := head
	if flags&lnkFlagHasLinkInfo != 0 {
		out = append(out, buildLinkInfo(s.LocalBasePath, s.CommonSuffix)...)
	}
	for _, v := range []struct {
		flag uint32
		val  string
	}{
		{lnkFlagHasName, s.Name},
		{lnkFlagHasRelativePath, s.RelativePath},
		{lnkFlagHasWorkingDir, s.WorkingDir},
		{lnkFlagHasArguments, s.Arguments},
		{lnkFlagHasIconLocation, s.IconLocation},
	} {
		if flags&v.flag == 0 {
			continue
		}
		out = append(out, buildStringData(v.val, s.Unicode)...)
	}
	if s.MachineID != "" {
		out = append(out, buildTracker(s.MachineID, s.Droids)...)
	}
	if !s.OmitTerminal {
		out = append(out, 0, 0, 0, 0)
	}
	return out
}

func buildLinkInfo(base, suffix string) []byte {
	const headerSize = 0x1C
	var liFlags uint32
	baseOff, suffixOff := 0, 0
	body := []byte{}
	if base != "" {
		liFlags |= 1 // VolumeIDAndLocalBasePath
		baseOff = headerSize
		body = append(body, base...)
		body = append(body, 0)
	}
	if suffix != "" {
		suffixOff = headerSize + len(body)
		body = append(body, suffix...)
		body = append(body, 0)
	}

	li := make([]byte, headerSize)
	buf.PutU32(li, 0x00, uint32(headerSize+len(body)))
	buf.PutU32(li, 0x04, headerSize)
	buf.PutU32(li, 0x08, liFlags)
	buf.PutU32(li, 0x10, uint32(baseOff))
	buf.PutU32(li, 0x18, uint32(suffixOff))
	return append(li, body...)
}

func buildStringData(s string, unicode bool) []byte {
	if !unicode {
		out := make([]byte, 2, 2+len(s))
		buf.PutU16(out, 0, uint16(len(s)))
		return append(out, s...)
	}
	out := make([]byte, 2, 2+len(s)*2)
	count := 0
	for _, r := range s {
		out = append(out, byte(r), byte(r>>8))
		count++
	}
	buf.PutU16(out, 0, uint16(count))
	return out
}

func buildTracker(machine string, droids [4]uuid.UUID) []byte {
	block := make([]byte, 0x60)
	buf.PutU32(block, 0x00, 0x60)
	buf.PutU32(block, 0x04, 0xA0000003)
	buf.PutU32(block, 0x08, 0x58)
	copy(block[0x10:0x20], machine)
	for i, d := range droids {
		disk := format.GUIDToWindows(d)
		copy(block[0x20+i*16:], disk[:])
	}
	return block
}
