// Package storage bridges the metadata namespace of a DestList (hex stream
// identifiers) to the stream namespace of the compound file container. It
// enumerates and retrieves raw stream bytes and does nothing else; the
// interpretation of those bytes belongs to the callers.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/richardlehane/mscfb"
)

// ErrNotFound indicates a requested stream is absent from the container.
// Expected under partial-file conditions (evidence carved from unallocated
// space frequently loses streams), so callers treat it per entry, not per
// file.
var ErrNotFound = errors.New("storage: stream not found")

// Store is a read-only view of a structured storage container. Stream name
// lookup is case-insensitive: DestList entry numbers render as lowercase
// hex while some writers name streams in uppercase.
type Store interface {
	ListStreams() []string
	ReadStream(name string) ([]byte, error)
}

// memStore backs both the CFB view and the test fakes: jumplist containers
// are small, so every stream is materialized at open time and the decode
// path never touches I/O again.
type memStore struct {
	names   []string
	streams map[string][]byte
}

// NewMemStore builds a Store from a name-to-bytes map. Used by tests and
// by OpenCFB internally.
func NewMemStore(streams map[string][]byte) Store {
	s := &memStore{streams: make(map[string][]byte, len(streams))}
	for name, data := range streams {
		s.names = append(s.names, name)
		s.streams[strings.ToLower(name)] = data
	}
	sort.Strings(s.names)
	return s
}

func (s *memStore) ListStreams() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

func (s *memStore) ReadStream(name string) ([]byte, error) {
	data, ok := s.streams[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("stream %q: %w", name, ErrNotFound)
	}
	return data, nil
}

// OpenCFB parses b as a compound file and returns a Store over its root
// streams. Nested storages do not occur in jumplist containers and are
// ignored.
func OpenCFB(b []byte) (Store, error) {
	doc, err := mscfb.New(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("storage: open compound file: %w", err)
	}
	streams := make(map[string][]byte)
	for {
		entry, err := doc.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("storage: walk compound file: %w", err)
		}
		data := make([]byte, entry.Size)
		if _, err := io.ReadFull(entry, data); err != nil {
			return nil, fmt.Errorf("storage: read stream %q: %w", entry.Name, err)
		}
		streams[entry.Name] = data
	}
	return NewMemStore(streams), nil
}
