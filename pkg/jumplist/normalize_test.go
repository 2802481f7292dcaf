package jumplist_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/jumpkit/pkg/jumplist"
	"github.com/joshuapare/jumpkit/pkg/types"
)

func TestNormalize(t *testing.T) {
	used := mustTime(t, "2023-06-01T12:00:00Z")
	written := mustTime(t, "2023-05-20T08:30:00Z")
	f := &types.File{
		Kind:       types.KindAutomatic,
		AppID:      "9b9cdc69c1c24e2b",
		AppName:    "Notepad (64-bit)",
		SourcePath: "/evidence/9b9cdc69c1c24e2b.automaticDestinations-ms",
		Entries: []types.Entry{
			{
				Order:       0,
				Pinned:      true,
				AccessCount: 5,
				LastUsed:    used,
				Hostname:    "desktop-01",
				Path:        `C:\Test\a.txt`,
				Link: &types.LinkRecord{
					TargetPath: `C:\Test\a.txt`,
					Arguments:  "-n",
					Name:       "notes",
					WriteTime:  written,
					FileSize:   64,
				},
			},
			{
				Order: 1,
				Err:   &types.Error{Kind: types.ErrKindMissingStream, Msg: `stream "2" not in container`},
			},
		},
	}

	rows := jumplist.Normalize(f)
	require.Len(t, rows, 2)

	r := rows[0]
	assert.Equal(t, "9b9cdc69c1c24e2b", r.AppID)
	assert.Equal(t, "Notepad (64-bit)", r.AppName)
	assert.Equal(t, "automatic", r.Type)
	assert.Equal(t, "0", r.Order)
	assert.Equal(t, "true", r.Pinned)
	assert.Equal(t, "5", r.AccessCount)
	assert.Equal(t, "2023-06-01T12:00:00Z", r.LastUsed)
	assert.Equal(t, `C:\Test\a.txt`, r.TargetPath)
	assert.Equal(t, "-n", r.Arguments)
	assert.Equal(t, "notes", r.Name)
	assert.Equal(t, "2023-05-20T08:30:00Z", r.ModTime)
	// Unset FILETIME epochs render as empty, not 1601.
	assert.Empty(t, r.AccessTime)
	assert.Equal(t, "64", r.Size)
	assert.Equal(t, "desktop-01", r.Hostname)
	assert.Empty(t, r.DecodeError)

	// Failed entries still produce a row.
	bad := rows[1]
	assert.Equal(t, "1", bad.Order)
	assert.Empty(t, bad.TargetPath)
	assert.Contains(t, bad.DecodeError, "not in container")
}

func TestNormalizeCustomBlanksDestListFields(t *testing.T) {
	f := &types.File{
		Kind: types.KindCustom,
		Entries: []types.Entry{{
			Link: &types.LinkRecord{TargetPath: `C:\x`},
		}},
	}
	rows := jumplist.Normalize(f)
	require.Len(t, rows, 1)
	// A custom container has no pin state, access counter, or last-used
	// time; the columns stay empty instead of reading as zero values.
	assert.Empty(t, rows[0].Pinned)
	assert.Empty(t, rows[0].AccessCount)
	assert.Empty(t, rows[0].LastUsed)
	assert.Equal(t, `C:\x`, rows[0].TargetPath)
}

func TestNormalizeHostnameFallback(t *testing.T) {
	f := &types.File{
		Kind: types.KindCustom,
		Entries: []types.Entry{{
			Link: &types.LinkRecord{TargetPath: `C:\x`, MachineID: "laptop-9"},
		}},
	}
	rows := jumplist.Normalize(f)
	require.Len(t, rows, 1)
	assert.Equal(t, "laptop-9", rows[0].Hostname)
}

func TestNormalizeRelativePathFallback(t *testing.T) {
	f := &types.File{
		Entries: []types.Entry{{
			Link: &types.LinkRecord{RelativePath: `..\shared\r.txt`},
		}},
	}
	rows := jumplist.Normalize(f)
	require.Len(t, rows, 1)
	assert.Equal(t, `..\shared\r.txt`, rows[0].TargetPath)
}

func TestNormalizeCategoryLabel(t *testing.T) {
	for _, tc := range []struct {
		cat  types.Category
		want string
	}{
		{types.Category{Type: "custom", Name: "Projects"}, "Projects"},
		{types.Category{Type: "known", ID: "recent"}, "recent"},
		{types.Category{Type: "task"}, "task"},
	} {
		cat := tc.cat
		f := &types.File{Entries: []types.Entry{{Category: &cat}}}
		rows := jumplist.Normalize(f)
		require.Len(t, rows, 1)
		assert.Equal(t, tc.want, rows[0].Category)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	f := &types.File{
		AppID: "abc",
		Entries: []types.Entry{{
			AccessCount: 2,
			LastUsed:    time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			Link:        &types.LinkRecord{TargetPath: `C:\a`},
		}},
	}
	assert.Equal(t, jumplist.Normalize(f), jumplist.Normalize(f))
}

func TestNormalizeNil(t *testing.T) {
	assert.Nil(t, jumplist.Normalize(nil))
	assert.Empty(t, jumplist.Normalize(&types.File{}))
}

func TestNormalHeaderMatchesRow(t *testing.T) {
	assert.Equal(t, len(types.NormalHeader()), len(types.NormalRecord{}.Row()))
}
