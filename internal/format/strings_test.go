package format

import "testing"

func TestUTF16Counted(t *testing.T) {
	raw := encodeUTF16("hello")
	raw = append(raw, 0xAA, 0xBB) // trailing bytes must not be consumed

	s, n, err := UTF16Counted(raw, 5)
	if err != nil {
		t.Fatalf("UTF16Counted: %v", err)
	}
	if s != "hello" || n != 10 {
		t.Fatalf("got %q consumed %d", s, n)
	}
}

func TestUTF16CountedTruncated(t *testing.T) {
	if _, _, err := UTF16Counted(encodeUTF16("hi"), 3); err == nil {
		t.Fatalf("expected truncation error")
	}
}

func TestUTF16CountedEmpty(t *testing.T) {
	s, n, err := UTF16Counted([]byte{0xAA, 0xBB}, 0)
	if err != nil || s != "" || n != 0 {
		t.Fatalf("got %q, %d, %v", s, n, err)
	}
}

func TestUTF16NonASCII(t *testing.T) {
	// "日" is U+65E5: 0xE5 0x65 little-endian.
	s, n, err := UTF16Counted([]byte{0xE5, 0x65}, 1)
	if err != nil {
		t.Fatalf("UTF16Counted: %v", err)
	}
	if s != "日" || n != 2 {
		t.Fatalf("got %q consumed %d", s, n)
	}
}

func TestCodePageString(t *testing.T) {
	s, err := CodePageString([]byte{'h', 'o', 's', 't', 0, 0, 0, 0})
	if err != nil {
		t.Fatalf("CodePageString: %v", err)
	}
	if s != "host" {
		t.Fatalf("got %q", s)
	}

	// 0xE9 is é in Windows-1252.
	s, err = CodePageString([]byte{'c', 'a', 'f', 0xE9})
	if err != nil {
		t.Fatalf("CodePageString: %v", err)
	}
	if s != "café" {
		t.Fatalf("got %q", s)
	}
}
