package format

import (
	"testing"

	"github.com/google/uuid"
)

func TestGUIDRoundTrip(t *testing.T) {
	want := uuid.MustParse("00021401-0000-0000-c000-000000000046")
	disk := GUIDToWindows(want)
	got, err := GUIDFromWindows(disk[:])
	if err != nil {
		t.Fatalf("GUIDFromWindows: %v", err)
	}
	if got != want {
		t.Fatalf("round-trip mismatch: got %s want %s", got, want)
	}
}

func TestGUIDFromWindowsSwizzle(t *testing.T) {
	// First three fields are little-endian on disk.
	disk := []byte{
		0x78, 0x56, 0x34, 0x12,
		0xbc, 0x9a,
		0xf0, 0xde,
		0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef,
	}
	got, err := GUIDFromWindows(disk)
	if err != nil {
		t.Fatalf("GUIDFromWindows: %v", err)
	}
	if got.String() != "12345678-9abc-def0-0123-456789abcdef" {
		t.Fatalf("swizzle mismatch: %s", got)
	}
}

func TestGUIDFromWindowsTruncated(t *testing.T) {
	if _, err := GUIDFromWindows(make([]byte, GUIDSize-1)); err == nil {
		t.Fatalf("expected truncation error")
	}
}
