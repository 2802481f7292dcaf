package lnk

import (
	"testing"

	"github.com/google/uuid"

	"github.com/joshuapare/jumpkit/internal/testutil"
	"github.com/joshuapare/jumpkit/pkg/types"
)

func decode(t *testing.T, b []byte) (*types.LinkRecord, int) {
	t.Helper()
	rec, n, err := (Decoder{}).Decode(b)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return rec, n
}

func TestDecodeMinimal(t *testing.T) {
	blob := testutil.BuildLink(testutil.LinkSpec{
		LocalBasePath: `C:\Test`,
		CommonSuffix:  `a.txt`,
	})

	rec, n := decode(t, blob)
	if n != len(blob) {
		t.Fatalf("consumed %d of %d bytes", n, len(blob))
	}
	if rec.TargetPath != `C:\Test\a.txt` {
		t.Fatalf("TargetPath = %q", rec.TargetPath)
	}
}

func TestDecodeStringData(t *testing.T) {
	for _, unicode := range []bool{false, true} {
		blob := testutil.BuildLink(testutil.LinkSpec{
			LocalBasePath: `C:\app\tool.exe`,
			Name:          "launch the tool",
			RelativePath:  `.\tool.exe`,
			WorkingDir:    `C:\app`,
			Arguments:     `--fast "two words"`,
			IconLocation:  `%SystemRoot%\system32\shell32.dll`,
			Unicode:       unicode,
		})

		rec, n := decode(t, blob)
		if n != len(blob) {
			t.Fatalf("unicode=%v: consumed %d of %d bytes", unicode, n, len(blob))
		}
		if rec.Name != "launch the tool" || rec.WorkingDir != `C:\app` {
			t.Fatalf("unicode=%v: string data mismatch: %+v", unicode, rec)
		}
		if rec.Arguments != `--fast "two words"` {
			t.Fatalf("unicode=%v: Arguments = %q", unicode, rec.Arguments)
		}
		if rec.IconLocation != `%SystemRoot%\system32\shell32.dll` {
			t.Fatalf("unicode=%v: IconLocation = %q", unicode, rec.IconLocation)
		}
	}
}

func TestDecodeHeaderFields(t *testing.T) {
	const ft = uint64(132539328000000000) // 2021-01-01T00:00:00Z
	blob := testutil.BuildLink(testutil.LinkSpec{
		LocalBasePath: `C:\data.bin`,
		CreationTime:  ft,
		AccessTime:    ft + 10_000_000,
		WriteTime:     ft + 20_000_000,
		FileSize:      4096,
	})

	rec, _ := decode(t, blob)
	if rec.FileSize != 4096 {
		t.Fatalf("FileSize = %d", rec.FileSize)
	}
	if rec.CreationTime.Year() != 2021 {
		t.Fatalf("CreationTime = %v", rec.CreationTime)
	}
	if !rec.WriteTime.After(rec.AccessTime) || !rec.AccessTime.After(rec.CreationTime) {
		t.Fatalf("timestamps out of order: %v %v %v", rec.CreationTime, rec.AccessTime, rec.WriteTime)
	}
}

func TestDecodeTracker(t *testing.T) {
	droids := [4]uuid.UUID{
		uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		uuid.MustParse("44444444-4444-4444-4444-444444444444"),
	}
	blob := testutil.BuildLink(testutil.LinkSpec{
		LocalBasePath: `C:\x`,
		MachineID:     "desktop-9",
		Droids:        droids,
	})

	rec, n := decode(t, blob)
	if n != len(blob) {
		t.Fatalf("consumed %d of %d bytes", n, len(blob))
	}
	if rec.MachineID != "desktop-9" {
		t.Fatalf("MachineID = %q", rec.MachineID)
	}
	if rec.VolumeDroid != droids[0] || rec.FileDroid != droids[1] ||
		rec.BirthVolumeDroid != droids[2] || rec.BirthFileDroid != droids[3] {
		t.Fatalf("droid mismatch: %+v", rec)
	}
}

// The consumed count is the only framing CustomDestinations has, so the
// boundary cases get exact-offset coverage.

func TestDecodeExactBoundary(t *testing.T) {
	blob := testutil.BuildLink(testutil.LinkSpec{LocalBasePath: `C:\b.txt`})

	// Blob ends exactly at buffer end.
	_, n := decode(t, blob)
	if n != len(blob) {
		t.Fatalf("consumed %d, want %d", n, len(blob))
	}

	// Trailing bytes past the terminal block are not consumed.
	padded := append(append([]byte{}, blob...), 0xDE, 0xAD)
	_, n = decode(t, padded)
	if n != len(blob) {
		t.Fatalf("consumed %d, want %d", n, len(blob))
	}

	// One byte short of the terminal block: the walk stops before the
	// partial trailer because a truncated tail cannot hold a block header.
	_, n, err := (Decoder{}).Decode(blob[:len(blob)-1])
	if err != nil || n != len(blob)-4 {
		t.Fatalf("short terminal: n=%d err=%v", n, err)
	}
}

func TestDecodeTruncatedHeader(t *testing.T) {
	blob := testutil.BuildLink(testutil.LinkSpec{LocalBasePath: `C:\b.txt`})
	if _, _, err := (Decoder{}).Decode(blob[:HeaderSize-1]); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestDecodeTruncatedLinkInfo(t *testing.T) {
	blob := testutil.BuildLink(testutil.LinkSpec{LocalBasePath: `C:\Test\file.txt`})
	if _, _, err := (Decoder{}).Decode(blob[:HeaderSize+6]); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestDecodeBadMagic(t *testing.T) {
	blob := testutil.BuildLink(testutil.LinkSpec{LocalBasePath: `C:\x`})
	blob[0] = 0x4B
	if _, _, err := (Decoder{}).Decode(blob); err == nil {
		t.Fatalf("expected signature error")
	}

	blob = testutil.BuildLink(testutil.LinkSpec{LocalBasePath: `C:\x`})
	blob[5] ^= 0xFF // corrupt the CLSID
	if _, _, err := (Decoder{}).Decode(blob); err == nil {
		t.Fatalf("expected clsid error")
	}
}

func TestDecodeRelativeFallback(t *testing.T) {
	blob := testutil.BuildLink(testutil.LinkSpec{RelativePath: `..\notes.txt`})
	rec, _ := decode(t, blob)
	if rec.TargetPath != `..\notes.txt` {
		t.Fatalf("TargetPath = %q", rec.TargetPath)
	}
}

func BenchmarkDecode(b *testing.B) {
	blob := testutil.BuildLink(testutil.LinkSpec{
		LocalBasePath: `C:\Users\test\Documents`,
		CommonSuffix:  `report.docx`,
		Name:          "quarterly report",
		RelativePath:  `..\Documents\report.docx`,
		WorkingDir:    `C:\Users\test\Documents`,
		Arguments:     "/readonly",
		Unicode:       true,
		MachineID:     "desktop-01",
	})
	b.SetBytes(int64(len(blob)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, _, err := (Decoder{}).Decode(blob); err != nil {
			b.Fatal(err)
		}
	}
}
