// Package lnk decodes Windows shell link (LNK) blobs. It is the default
// implementation of the types.LinkDecoder delegate.
//
// Jumplist containers concatenate shell links with no framing of their own,
// so this decoder's defining obligation is reporting the exact byte length
// of the structurally valid portion: the caller advances its cursor by the
// consumed count and nothing else. Every section below is length-prefixed
// on disk, which is what makes the blob self-delimiting.
package lnk

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/jumpkit/internal/buf"
	"github.com/joshuapare/jumpkit/internal/format"
	"github.com/joshuapare/jumpkit/pkg/types"
)

// HeaderSize is the fixed size of the shell link header.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Header size, always 0x4C
//	 0x04   16    Shell link CLSID
//	 0x14    4    Link flags
//	 0x18    4    Target file attributes
//	 0x1C    8    Target creation time (FILETIME)
//	 0x24    8    Target access time (FILETIME)
//	 0x2C    8    Target write time (FILETIME)
//	 0x34    4    Target size (low 32 bits)
//	 0x38    4    Icon index
//	 0x3C    4    Show command
//	 0x40    2    Hot key
//	 0x42   10    Reserved
const HeaderSize = 0x4C

// Link flag bits acted on here.
const (
	flagHasTargetIDList = 1 << 0
	flagHasLinkInfo     = 1 << 1
	flagHasName         = 1 << 2
	flagHasRelativePath = 1 << 3
	flagHasWorkingDir   = 1 << 4
	flagHasArguments    = 1 << 5
	flagHasIconLocation = 1 << 6
	flagIsUnicode       = 1 << 7
)

// LinkInfo structure offsets, relative to the LinkInfo start.
const (
	liSize             = 0x00
	liHeaderSize       = 0x04
	liFlags            = 0x08
	liLocalBasePathOff = 0x10
	liCNRLOff          = 0x14
	liCommonSuffixOff  = 0x18

	liFlagVolumeIDAndLocalBasePath = 1 << 0
	liFlagCommonNetworkRelative    = 1 << 1
)

// Tracker extra-data block (distributed link tracking).
const (
	trackerSignature = 0xA0000003
	trackerMinSize   = 0x60
)

// Decoder is the stock shell link delegate. The zero value is ready to use
// and safe for concurrent use: decoding holds no state between calls.
type Decoder struct{}

var _ types.LinkDecoder = Decoder{}

// Decode parses one shell link blob from the front of b. It returns the
// structured record and the number of bytes the blob occupies. On malformed
// input the record decoded so far is returned alongside the error; consumed
// is then the count of bytes validated before the fault, which callers must
// not use to keep walking.
func (Decoder) Decode(b []byte) (*types.LinkRecord, int, error) {
	rec := &types.LinkRecord{}

	if len(b) < HeaderSize {
		return rec, 0, fmt.Errorf("lnk header: %w", format.ErrTruncated)
	}
	if buf.U32LE(b) != HeaderSize {
		return rec, 0, fmt.Errorf("lnk header size 0x%x: %w", buf.U32LE(b), format.ErrSignatureMismatch)
	}
	if !bytes.Equal(b[0x04:0x14], format.ShellLinkCLSID) {
		return rec, 0, fmt.Errorf("lnk header clsid: %w", format.ErrSignatureMismatch)
	}

	flags := buf.U32LE(b[0x14:])
	rec.FileAttributes = buf.U32LE(b[0x18:])
	rec.CreationTime = format.FiletimeToTime(buf.U64LE(b[0x1C:]))
	rec.AccessTime = format.FiletimeToTime(buf.U64LE(b[0x24:]))
	rec.WriteTime = format.FiletimeToTime(buf.U64LE(b[0x2C:]))
	rec.FileSize = buf.U32LE(b[0x34:])
	rec.IconIndex = buf.I32LE(b[0x38:])
	rec.ShowCommand = buf.U32LE(b[0x3C:])

	cur := HeaderSize

	if flags&flagHasTargetIDList != 0 {
		if !buf.Has(b, cur, 2) {
			return rec, cur, fmt.Errorf("lnk idlist size: %w", format.ErrTruncated)
		}
		size := int(buf.U16LE(b[cur:]))
		cur += 2
		if !buf.Has(b, cur, size) {
			return rec, cur, fmt.Errorf("lnk idlist: %w", format.ErrTruncated)
		}
		// The target ID list is shell-namespace data; the resolved paths
		// come from LinkInfo, so the list is skipped, not interpreted.
		cur += size
	}

	if flags&flagHasLinkInfo != 0 {
		n, err := decodeLinkInfo(b[cur:], rec)
		cur += n
		if err != nil {
			return rec, cur, err
		}
	}

	unicode := flags&flagIsUnicode != 0
	for _, s := range []struct {
		flag uint32
		dst  *string
	}{
		{flagHasName, &rec.Name},
		{flagHasRelativePath, &rec.RelativePath},
		{flagHasWorkingDir, &rec.WorkingDir},
		{flagHasArguments, &rec.Arguments},
		{flagHasIconLocation, &rec.IconLocation},
	} {
		if flags&s.flag == 0 {
			continue
		}
		v, n, err := decodeStringData(b[cur:], unicode)
		if err != nil {
			return rec, cur, err
		}
		*s.dst = v
		cur += n
	}

	n, err := decodeExtraData(b[cur:], rec)
	cur += n
	if err != nil {
		return rec, cur, err
	}

	if rec.TargetPath == "" && rec.RelativePath != "" {
		rec.TargetPath = rec.RelativePath
	}
	return rec, cur, nil
}

// decodeLinkInfo resolves the target path from the LinkInfo structure:
// volume-local links carry a base path plus common suffix, network links a
// share name plus common suffix. Offsets are validated against the declared
// LinkInfo size, not the whole buffer, so a lying offset cannot read into
// the neighboring record.
func decodeLinkInfo(b []byte, rec *types.LinkRecord) (int, error) {
	if !buf.Has(b, 0, 4) {
		return 0, fmt.Errorf("lnk linkinfo size: %w", format.ErrTruncated)
	}
	size := int(buf.U32LE(b[liSize:]))
	li, ok := buf.Slice(b, 0, size)
	if !ok || size < 0x1C {
		return 0, fmt.Errorf("lnk linkinfo (%d bytes): %w", size, format.ErrTruncated)
	}

	liFlagsV := buf.U32LE(li[liFlags:])
	var base, suffix string
	var err error
	if liFlagsV&liFlagVolumeIDAndLocalBasePath != 0 {
		if base, err = terminatedAt(li, int(buf.U32LE(li[liLocalBasePathOff:]))); err != nil {
			return size, fmt.Errorf("lnk local base path: %w", err)
		}
	}
	if suffix, err = terminatedAt(li, int(buf.U32LE(li[liCommonSuffixOff:]))); err != nil {
		return size, fmt.Errorf("lnk common path suffix: %w", err)
	}

	switch {
	case base != "" && suffix != "":
		rec.TargetPath = base + `\` + suffix
	case base != "":
		rec.TargetPath = base
	default:
		if liFlagsV&liFlagCommonNetworkRelative != 0 {
			share, err := decodeNetName(li, int(buf.U32LE(li[liCNRLOff:])))
			if err != nil {
				return size, err
			}
			if suffix != "" {
				rec.TargetPath = share + `\` + suffix
			} else {
				rec.TargetPath = share
			}
		} else {
			rec.TargetPath = suffix
		}
	}
	return size, nil
}

// decodeNetName extracts the share name from a common network relative link.
func decodeNetName(li []byte, off int) (string, error) {
	if !buf.Has(li, off, 0x14) {
		return "", fmt.Errorf("lnk network link: %w", format.ErrTruncated)
	}
	nameOff := int(buf.U32LE(li[off+0x08:]))
	name, err := terminatedAt(li[off:], nameOff)
	if err != nil {
		return "", fmt.Errorf("lnk net name: %w", err)
	}
	return name, nil
}

// terminatedAt reads a NUL-terminated code page string at off. An offset of
// zero means the field is absent.
func terminatedAt(b []byte, off int) (string, error) {
	if off == 0 {
		return "", nil
	}
	if off < 0 || off >= len(b) {
		return "", format.ErrTruncated
	}
	end := bytes.IndexByte(b[off:], 0)
	if end < 0 {
		return "", format.ErrTruncated
	}
	return format.CodePageString(b[off : off+end])
}

// decodeStringData reads one counted string-data field. The count is in
// characters; character width depends on the header's unicode flag.
func decodeStringData(b []byte, unicode bool) (string, int, error) {
	if !buf.Has(b, 0, 2) {
		return "", 0, fmt.Errorf("lnk string size: %w", format.ErrTruncated)
	}
	chars := int(buf.U16LE(b))
	if unicode {
		s, n, err := format.UTF16Counted(b[2:], chars)
		if err != nil {
			return "", 0, fmt.Errorf("lnk string: %w", err)
		}
		return s, 2 + n, nil
	}
	raw, ok := buf.Slice(b, 2, chars)
	if !ok {
		return "", 0, fmt.Errorf("lnk string: %w", format.ErrTruncated)
	}
	s, err := format.CodePageString(raw)
	if err != nil {
		return "", 0, fmt.Errorf("lnk string: %w", err)
	}
	return s, 2 + chars, nil
}

// decodeExtraData walks the trailing extra-data blocks. Each block is
// length-prefixed; a size below four is the terminal marker and its four
// bytes belong to the blob. Only the tracker block is interpreted.
func decodeExtraData(b []byte, rec *types.LinkRecord) (int, error) {
	cur := 0
	for {
		if !buf.Has(b, cur, 4) {
			// Writers that omit the terminal block end the blob here.
			return cur, nil
		}
		size := int(buf.U32LE(b[cur:]))
		if size < 4 {
			return cur + 4, nil
		}
		block, ok := buf.Slice(b, cur, size)
		if !ok || size < 8 {
			return cur, fmt.Errorf("lnk extra block (%d bytes): %w", size, format.ErrTruncated)
		}
		if buf.U32LE(block[4:]) == trackerSignature && size >= trackerMinSize {
			if err := decodeTracker(block, rec); err != nil {
				return cur, err
			}
		}
		cur += size
	}
}

// decodeTracker extracts link tracking metadata: the machine the target
// lived on plus the droid pairs used to chase it across moves.
//
//	Offset  Size  Description
//	------  ----  -------------------------------------
//	 0x00    4    Block size (0x60)
//	 0x04    4    Signature 0xA0000003
//	 0x08    4    Payload length (0x58)
//	 0x0C    4    Version (0)
//	 0x10   16    Machine ID (code page, NUL padded)
//	 0x20   32    Droid (volume + file GUIDs)
//	 0x40   32    Birth droid (volume + file GUIDs)
func decodeTracker(block []byte, rec *types.LinkRecord) error {
	machine, err := format.CodePageString(block[0x10:0x20])
	if err != nil {
		return fmt.Errorf("lnk tracker machine id: %w", err)
	}
	rec.MachineID = machine
	if rec.VolumeDroid, err = format.GUIDFromWindows(block[0x20:]); err != nil {
		return fmt.Errorf("lnk tracker droid: %w", err)
	}
	if rec.FileDroid, err = format.GUIDFromWindows(block[0x30:]); err != nil {
		return fmt.Errorf("lnk tracker droid: %w", err)
	}
	if rec.BirthVolumeDroid, err = format.GUIDFromWindows(block[0x40:]); err != nil {
		return fmt.Errorf("lnk tracker birth droid: %w", err)
	}
	if rec.BirthFileDroid, err = format.GUIDFromWindows(block[0x50:]); err != nil {
		return fmt.Errorf("lnk tracker birth droid: %w", err)
	}
	return nil
}
