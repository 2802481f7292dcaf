package format

import (
	"bytes"
	"strings"

	"github.com/joshuapare/jumpkit/internal/buf"
)

// Container identifies the on-disk shape of a jumplist file.
type Container int

const (
	// ContainerUnknown means neither known signature matched.
	ContainerUnknown Container = iota
	// ContainerAutomatic is a CFB container carrying a DestList stream.
	ContainerAutomatic
	// ContainerCustom is a flat CustomDestinations stream.
	ContainerCustom
)

func (c Container) String() string {
	switch c {
	case ContainerAutomatic:
		return "automatic"
	case ContainerCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// DetectContainer classifies a jumplist file from its leading bytes.
// AutomaticDestinations files open with the CFB magic; CustomDestinations
// files open with their fixed version marker. Only the first few bytes are
// inspected, so callers may pass a prefix. Unknown is a classification
// result, not an error; failure policy belongs to the caller.
func DetectContainer(b []byte) Container {
	if len(b) >= len(CFBSignature) && bytes.Equal(b[:len(CFBSignature)], CFBSignature) {
		return ContainerAutomatic
	}
	if len(b) >= 4 && buf.U32LE(b) == CustDestVersion {
		return ContainerCustom
	}
	return ContainerUnknown
}

// DetectContainerName classifies a jumplist file from its base name. Used
// as a hint when the content classifier returns Unknown (e.g. a zero-length
// recovered file).
func DetectContainerName(name string) Container {
	switch {
	case strings.HasSuffix(name, ".automaticDestinations-ms"):
		return ContainerAutomatic
	case strings.HasSuffix(name, ".customDestinations-ms"):
		return ContainerCustom
	default:
		return ContainerUnknown
	}
}
