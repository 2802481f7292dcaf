package format

import (
	"testing"

	"github.com/joshuapare/jumpkit/internal/buf"
)

func encodeCustDestHeader(h CustDestHeader) []byte {
	b := make([]byte, CustDestHeaderSize)
	buf.PutU32(b, 0x00, h.Version)
	buf.PutU32(b, 0x04, h.CategoryCount)
	buf.PutU32(b, 0x08, h.Reserved)
	return b
}

func TestParseCustDestHeader(t *testing.T) {
	want := CustDestHeader{Version: CustDestVersion, CategoryCount: 3}
	got, err := ParseCustDestHeader(encodeCustDestHeader(want))
	if err != nil {
		t.Fatalf("ParseCustDestHeader: %v", err)
	}
	if got != want {
		t.Fatalf("header mismatch: got %+v want %+v", got, want)
	}
}

func TestParseCustDestHeaderBadVersion(t *testing.T) {
	b := encodeCustDestHeader(CustDestHeader{Version: 7})
	if _, err := ParseCustDestHeader(b); err == nil {
		t.Fatalf("expected unsupported version error")
	}
	if _, err := ParseCustDestHeader(b[:8]); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestParseCategoryHeaderKnown(t *testing.T) {
	b := make([]byte, 8)
	buf.PutU32(b, 0, uint32(CategoryKnown))
	buf.PutU32(b, 4, uint32(2)) // recent

	h, n, err := ParseCategoryHeader(b)
	if err != nil {
		t.Fatalf("ParseCategoryHeader: %v", err)
	}
	if n != 8 || h.Type != CategoryKnown || h.KnownID != KnownCategoryRecent {
		t.Fatalf("unexpected header: %+v consumed %d", h, n)
	}
	if KnownCategoryName(h.KnownID) != "recent" {
		t.Fatalf("KnownCategoryName = %q", KnownCategoryName(h.KnownID))
	}
}

func TestParseCategoryHeaderCustom(t *testing.T) {
	name := encodeUTF16("Pinned")
	b := make([]byte, 4+2+len(name)+4)
	buf.PutU32(b, 0, uint32(CategoryCustom))
	buf.PutU16(b, 4, uint16(len(name)/2))
	copy(b[6:], name)
	buf.PutU32(b, 6+len(name), 4)

	h, n, err := ParseCategoryHeader(b)
	if err != nil {
		t.Fatalf("ParseCategoryHeader: %v", err)
	}
	if n != len(b) || h.Name != "Pinned" || h.EntryCount != 4 {
		t.Fatalf("unexpected header: %+v consumed %d", h, n)
	}
}

func TestParseCategoryHeaderTask(t *testing.T) {
	b := make([]byte, 8)
	buf.PutU32(b, 0, uint32(CategoryTask))
	buf.PutU32(b, 4, 2)

	h, n, err := ParseCategoryHeader(b)
	if err != nil {
		t.Fatalf("ParseCategoryHeader: %v", err)
	}
	if n != 8 || h.EntryCount != 2 {
		t.Fatalf("unexpected header: %+v consumed %d", h, n)
	}
}

func TestParseCategoryHeaderBadType(t *testing.T) {
	b := make([]byte, 8)
	buf.PutU32(b, 0, 0x99)
	if _, _, err := ParseCategoryHeader(b); err == nil {
		t.Fatalf("expected signature mismatch")
	}
}

func TestParseCategoryHeaderTruncated(t *testing.T) {
	b := make([]byte, 5)
	buf.PutU32(b, 0, uint32(CategoryTask))
	if _, _, err := ParseCategoryHeader(b); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestSeparator(t *testing.T) {
	b := make([]byte, 4)
	buf.PutU32(b, 0, CustDestSeparator)
	if !IsSeparator(b) {
		t.Fatalf("separator not recognized")
	}
	if IsSeparator(b[:3]) {
		t.Fatalf("short buffer should not match")
	}
	if IsSeparator([]byte{0, 0, 0, 0}) {
		t.Fatalf("zeros should not match")
	}
}

func TestShellLinkCLSID(t *testing.T) {
	if !IsShellLinkCLSID(ShellLinkCLSID) {
		t.Fatalf("CLSID not recognized")
	}
	guid, err := GUIDFromWindows(ShellLinkCLSID)
	if err != nil {
		t.Fatalf("GUIDFromWindows: %v", err)
	}
	if guid.String() != "00021401-0000-0000-c000-000000000046" {
		t.Fatalf("CLSID renders as %s", guid)
	}
}
