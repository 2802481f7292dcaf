package jumplist

import (
	"errors"
	"fmt"

	"github.com/joshuapare/jumpkit/internal/format"
	"github.com/joshuapare/jumpkit/internal/storage"
	"github.com/joshuapare/jumpkit/pkg/types"
)

// decodeAutomatic walks the DestList metadata stream and resolves each
// record's blob from the container. The DestList drives everything: streams
// not referenced by a record are abandoned orphans and stay untouched.
func decodeAutomatic(store storage.Store, file *types.File, dec types.LinkDecoder) error {
	dest, err := store.ReadStream(format.DestListStreamName)
	if err != nil {
		return &types.Error{Kind: types.ErrKindFormat, Msg: "no DestList stream (empty jumplist)", Err: err}
	}
	if len(dest) == 0 {
		return &types.Error{Kind: types.ErrKindFormat, Msg: "zero-length DestList stream (empty jumplist)"}
	}

	head, err := format.ParseDestListHeader(dest)
	if err != nil {
		return wrapFormatErr("destlist header", err)
	}
	file.Version = uint32(head.Version)
	file.DeclaredEntries = head.EntryCount
	file.PinnedEntries = head.PinnedCount

	declared := int(head.EntryCount)
	off := format.DestListHeaderSize
	for off < len(dest) {
		rec, n, err := format.ParseDestListEntry(dest[off:], head.Version)
		if err != nil {
			if len(file.Entries) >= declared {
				// Trailing slack past the declared count is not a defect.
				break
			}
			file.Errs = append(file.Errs, wrapFormatErr(
				fmt.Sprintf("destlist entry %d at offset %d", len(file.Entries), off), err))
			break
		}
		off += n

		entry := types.Entry{
			Order:            len(file.Entries),
			StreamID:         rec.StreamName(),
			Pinned:           rec.Pinned(),
			AccessCount:      rec.AccessCount,
			LastUsed:         format.FiletimeToTime(rec.LastModifiedRaw),
			Hostname:         rec.Hostname,
			Path:             rec.Path,
			VolumeDroid:      rec.VolumeDroid,
			FileDroid:        rec.FileDroid,
			BirthVolumeDroid: rec.BirthVolumeDroid,
			BirthFileDroid:   rec.BirthFileDroid,
		}
		correlate(store, &entry, dec)
		file.Entries = append(file.Entries, entry)
	}

	if len(file.Entries) != declared {
		file.Errs = append(file.Errs, &types.Error{
			Kind: types.ErrKindTruncated,
			Msg:  fmt.Sprintf("DestList declares %d entries, decoded %d", declared, len(file.Entries)),
		})
	}
	if head.LastEntry > 0 {
		for i := range file.Entries {
			if n := streamNumber(&file.Entries[i]); n > head.LastEntry {
				file.Errs = append(file.Errs, &types.Error{
					Kind: types.ErrKindFormat,
					Msg:  fmt.Sprintf("entry number %d exceeds header's last issued %d", n, head.LastEntry),
				})
				break
			}
		}
	}
	return nil
}

// correlate bridges the metadata namespace to the stream namespace: it
// fetches the blob stream named by the entry and hands it to the delegate.
// Either the entry ends with a complete link record or with the error that
// stopped it; a partially constructed record is never attached.
func correlate(store storage.Store, entry *types.Entry, dec types.LinkDecoder) {
	data, err := store.ReadStream(entry.StreamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			entry.Err = &types.Error{
				Kind: types.ErrKindMissingStream,
				Msg:  fmt.Sprintf("stream %q not in container", entry.StreamID),
				Err:  err,
			}
			return
		}
		entry.Err = &types.Error{Kind: types.ErrKindFormat, Msg: "read blob stream", Err: err}
		return
	}
	rec, _, err := dec.Decode(data)
	if err != nil {
		entry.Err = &types.Error{
			Kind: types.ErrKindMalformedBlob,
			Msg:  fmt.Sprintf("shell link in stream %q", entry.StreamID),
			Err:  err,
		}
		return
	}
	entry.Link = rec
}

// streamNumber recovers the numeric entry number from the hex stream id.
func streamNumber(e *types.Entry) uint32 {
	var n uint32
	if _, err := fmt.Sscanf(e.StreamID, "%x", &n); err != nil {
		return 0
	}
	return n
}
