package jumplist

import (
	"strconv"
	"time"

	"github.com/joshuapare/jumpkit/pkg/types"
)

// Normalize flattens a decoded file into one tabular record per entry,
// merging the entry's container metadata with its link record. Entries that
// failed to decode still produce a row carrying the error text, so a damaged
// file is visible in the output rather than silently shorter. The input is
// not modified; normalizing twice yields identical rows.
func Normalize(f *types.File) []types.NormalRecord {
	if f == nil {
		return nil
	}
	out := make([]types.NormalRecord, 0, len(f.Entries))
	for i := range f.Entries {
		out = append(out, normalizeEntry(f, &f.Entries[i]))
	}
	return out
}

func normalizeEntry(f *types.File, e *types.Entry) types.NormalRecord {
	r := types.NormalRecord{
		AppID:      f.AppID,
		AppName:    f.AppName,
		Type:       f.Kind.String(),
		SourcePath: f.SourcePath,
		Order:      strconv.Itoa(e.Order),
		Path:       e.Path,
		Hostname:   e.Hostname,
	}
	// Pin state, access counter, and last-used time come from the DestList
	// and have no analog in a CustomDestinations file; those rows leave
	// the columns empty.
	if f.Kind != types.KindCustom {
		r.Pinned = strconv.FormatBool(e.Pinned)
		r.AccessCount = strconv.FormatUint(uint64(e.AccessCount), 10)
		r.LastUsed = normalTime(e.LastUsed)
	}
	if e.Category != nil {
		r.Category = e.Category.Name
		if r.Category == "" {
			r.Category = e.Category.ID
		}
		if r.Category == "" {
			r.Category = e.Category.Type
		}
	}
	if e.Err != nil {
		r.DecodeError = e.Err.Error()
	}
	if l := e.Link; l != nil {
		r.TargetPath = l.TargetPath
		if r.TargetPath == "" {
			// Some links carry only a relative path.
			r.TargetPath = l.RelativePath
		}
		r.Arguments = l.Arguments
		r.Name = l.Name
		r.ModTime = normalTime(l.WriteTime)
		r.AccessTime = normalTime(l.AccessTime)
		r.CreationTime = normalTime(l.CreationTime)
		r.Size = strconv.FormatUint(uint64(l.FileSize), 10)
		if r.Hostname == "" {
			r.Hostname = l.MachineID
		}
	}
	return r
}

// normalTime renders a timestamp as RFC 3339 UTC, or "" for the unset
// FILETIME epoch so columns stay empty rather than showing 1601.
func normalTime(t time.Time) string {
	if t.IsZero() || t.Unix() <= 0 {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
