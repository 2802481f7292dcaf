package format

import "testing"

func TestDetectContainer(t *testing.T) {
	auto := append([]byte{}, CFBSignature...)
	if got := DetectContainer(auto); got != ContainerAutomatic {
		t.Fatalf("CFB magic = %v, want automatic", got)
	}

	custom := encodeCustDestHeader(CustDestHeader{Version: CustDestVersion, CategoryCount: 1})
	if got := DetectContainer(custom); got != ContainerCustom {
		t.Fatalf("custom header = %v, want custom", got)
	}

	if got := DetectContainer([]byte{0xFF, 0xFE, 0x00, 0x01, 0x02}); got != ContainerUnknown {
		t.Fatalf("garbage = %v, want unknown", got)
	}
	if got := DetectContainer(nil); got != ContainerUnknown {
		t.Fatalf("empty = %v, want unknown", got)
	}
	// A truncated CFB magic must not classify as automatic.
	if got := DetectContainer(CFBSignature[:4]); got != ContainerUnknown {
		t.Fatalf("short magic = %v, want unknown", got)
	}
}

func TestDetectContainerName(t *testing.T) {
	cases := map[string]Container{
		"5f7b5f1e01b83767.automaticDestinations-ms": ContainerAutomatic,
		"1ced32d74a95c7bc.customDestinations-ms":    ContainerCustom,
		"notes.txt": ContainerUnknown,
	}
	for name, want := range cases {
		if got := DetectContainerName(name); got != want {
			t.Fatalf("DetectContainerName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestContainerString(t *testing.T) {
	if ContainerAutomatic.String() != "automatic" || ContainerCustom.String() != "custom" || ContainerUnknown.String() != "unknown" {
		t.Fatalf("unexpected Container strings")
	}
}
