package format

import (
	"fmt"

	"github.com/google/uuid"
)

// Windows serializes the first three GUID fields little-endian and the last
// two big-endian, so the on-disk byte order differs from RFC 4122. The
// helpers below swizzle between the two so droids and class identifiers
// print in their canonical form.

// GUIDFromWindows decodes a mixed-endian on-disk GUID into a uuid.UUID.
func GUIDFromWindows(b []byte) (uuid.UUID, error) {
	if len(b) < GUIDSize {
		return uuid.Nil, fmt.Errorf("guid: %w", ErrTruncated)
	}
	var raw [GUIDSize]byte
	raw[0], raw[1], raw[2], raw[3] = b[3], b[2], b[1], b[0]
	raw[4], raw[5] = b[5], b[4]
	raw[6], raw[7] = b[7], b[6]
	copy(raw[8:], b[8:GUIDSize])
	return uuid.FromBytes(raw[:])
}

// GUIDToWindows encodes u in the mixed-endian on-disk layout.
func GUIDToWindows(u uuid.UUID) [GUIDSize]byte {
	var b [GUIDSize]byte
	b[0], b[1], b[2], b[3] = u[3], u[2], u[1], u[0]
	b[4], b[5] = u[5], u[4]
	b[6], b[7] = u[7], u[6]
	copy(b[8:], u[8:])
	return b
}
