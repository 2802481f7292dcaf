package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindContainer     ErrKind = iota // neither container signature matched
	ErrKindVersion                      // recognized container, unhandled format version
	ErrKindTruncated                    // declared size/count exceeds available bytes
	ErrKindMissingStream                // DestList references an absent sub-stream
	ErrKindMalformedBlob                // shell link delegate rejected a blob
	ErrKindFormat                       // other structural corruption
	ErrKindIO                           // file access failure
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindContainer:
		return "unrecognized-container"
	case ErrKindVersion:
		return "unsupported-version"
	case ErrKindTruncated:
		return "truncated-structure"
	case ErrKindMissingStream:
		return "missing-stream"
	case ErrKindMalformedBlob:
		return "malformed-blob"
	case ErrKindFormat:
		return "format"
	case ErrKindIO:
		return "io"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its stable string name.
func (k ErrKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Error is the classified error carried by files and entries. Per-entry
// failures are values attached in place of the decoded result, never
// panics, so a damaged file still yields every decodable record.
type Error struct {
	Kind ErrKind `json:"kind"`
	Msg  string  `json:"error"`
	Err  error   `json:"-"` // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrUnknownContainer indicates the file matched neither container signature.
	ErrUnknownContainer = &Error{Kind: ErrKindContainer, Msg: "not a recognized jumplist container"}
	// ErrUnsupportedVersion indicates a recognized container with an unhandled version.
	ErrUnsupportedVersion = &Error{Kind: ErrKindVersion, Msg: "unsupported jumplist format version"}
	// ErrMissingStream indicates a DestList entry referencing an absent blob stream.
	ErrMissingStream = &Error{Kind: ErrKindMissingStream, Msg: "referenced stream not in container"}
)

// Kind identifies the decoded container shape.
type Kind int

const (
	KindUnknown Kind = iota
	KindAutomatic
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindAutomatic:
		return "automatic"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the kind as its stable string name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// LinkDecoder is the shell link delegate contract. Decode parses one blob
// from the front of b and reports the exact byte length of the structurally
// valid portion. Consumed never exceeds len(b); the CustomDestinations
// sequential decoder depends on it to locate the next record, so a decoder
// that cannot delimit a blob must return an error rather than a guess.
type LinkDecoder interface {
	Decode(b []byte) (rec *LinkRecord, consumed int, err error)
}

// LinkRecord is the structured result of decoding one shell link blob. The
// container decoders copy it through without reinterpretation.
type LinkRecord struct {
	TargetPath   string `json:"target_full_path"`
	Name         string `json:"name_string,omitempty"`
	RelativePath string `json:"relative_path,omitempty"`
	WorkingDir   string `json:"working_dir,omitempty"`
	Arguments    string `json:"command_line_arguments,omitempty"`
	IconLocation string `json:"icon_location,omitempty"`

	CreationTime time.Time `json:"target_creation_time"`
	AccessTime   time.Time `json:"target_access_time"`
	WriteTime    time.Time `json:"target_modification_time"`

	FileSize       uint32 `json:"target_size"`
	FileAttributes uint32 `json:"target_attributes"`
	IconIndex      int32  `json:"icon_index"`
	ShowCommand    uint32 `json:"show_command"`

	// Link tracking metadata from the tracker extra-data block, when present.
	MachineID        string    `json:"target_hostname,omitempty"`
	VolumeDroid      uuid.UUID `json:"volume_droid,omitempty"`
	FileDroid        uuid.UUID `json:"file_droid,omitempty"`
	BirthVolumeDroid uuid.UUID `json:"birth_volume_droid,omitempty"`
	BirthFileDroid   uuid.UUID `json:"birth_file_droid,omitempty"`
}

// Category describes the CustomDestinations group an entry belongs to.
type Category struct {
	Type string `json:"type"`
	// Name is set for application-defined categories.
	Name string `json:"name,omitempty"`
	// ID is the rendered known-category identifier ("frequent", "recent").
	ID string `json:"id,omitempty"`
}

// Entry is one recently or frequently used item. Exactly one of Link and
// Err is set once decoding finishes: an entry never carries a partially
// constructed link record.
type Entry struct {
	// Order is the position in the decoded sequence. Insertion order is
	// semantically meaningful: it reflects MRU ordering.
	Order int `json:"order"`

	// StreamID is the hex CFB stream name this entry's blob was resolved
	// from. AutomaticDestinations only.
	StreamID string `json:"stream_id,omitempty"`

	Pinned      bool      `json:"pinned"`
	AccessCount uint32    `json:"access_count"`
	LastUsed    time.Time `json:"last_used"`
	Hostname    string    `json:"hostname,omitempty"`
	Path        string    `json:"path,omitempty"`

	// Distributed link tracking identifiers. AutomaticDestinations only;
	// opaque handles for cross-move correlation, not interpreted.
	VolumeDroid      uuid.UUID `json:"volume_droid,omitempty"`
	FileDroid        uuid.UUID `json:"file_droid,omitempty"`
	BirthVolumeDroid uuid.UUID `json:"birth_volume_droid,omitempty"`
	BirthFileDroid   uuid.UUID `json:"birth_file_droid,omitempty"`

	// Category is the CustomDestinations group metadata, when the entry
	// came from a category-tagged group.
	Category *Category `json:"category,omitempty"`

	Link *LinkRecord `json:"lnk,omitempty"`
	Err  *Error      `json:"decode_error,omitempty"`
}

// File is the decoded result for one jumplist file. It owns its entries
// exclusively; nothing in the decode path retains references after return.
type File struct {
	Kind       Kind   `json:"type"`
	AppID      string `json:"app_id"`
	AppName    string `json:"app_name,omitempty"`
	SourcePath string `json:"source_path,omitempty"`

	// Version is the container format version (DestList version for
	// automatic files, header version for custom files).
	Version uint32 `json:"version"`

	// DeclaredEntries and PinnedEntries mirror the DestList header. A
	// mismatch between DeclaredEntries and len(Entries) is reported in
	// Errs, never silently truncated or padded.
	DeclaredEntries uint32 `json:"declared_entries,omitempty"`
	PinnedEntries   uint32 `json:"pinned_entries,omitempty"`

	// Categories lists every CustomDestinations category header seen,
	// including known categories that embed no blobs.
	Categories []Category `json:"categories,omitempty"`

	Entries []Entry `json:"entries"`

	// Errs carries file-level decode problems that did not abort the
	// decode (count mismatches, lost cursor, unreadable trailing data).
	Errs []*Error `json:"decode_errors,omitempty"`
}
