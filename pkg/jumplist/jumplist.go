package jumplist

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joshuapare/jumpkit/internal/format"
	"github.com/joshuapare/jumpkit/internal/lnk"
	"github.com/joshuapare/jumpkit/internal/mmfile"
	"github.com/joshuapare/jumpkit/internal/storage"
	"github.com/joshuapare/jumpkit/pkg/types"
)

// Options tunes a decode. The zero value (or nil) selects the defaults.
type Options struct {
	// Link is the shell link delegate. Nil selects the stock decoder.
	Link types.LinkDecoder
}

func (o *Options) link() types.LinkDecoder {
	if o == nil || o.Link == nil {
		return lnk.Decoder{}
	}
	return o.Link
}

// Classify decides the container shape from the leading bytes, falling back
// to the base name when the content matches neither signature. Unknown is a
// result, not an error; failure policy stays with the caller.
func Classify(b []byte, name string) types.Kind {
	c := format.DetectContainer(b)
	if c == format.ContainerUnknown {
		c = format.DetectContainerName(name)
	}
	switch c {
	case format.ContainerAutomatic:
		return types.KindAutomatic
	case format.ContainerCustom:
		return types.KindCustom
	default:
		return types.KindUnknown
	}
}

// AppIDFromName extracts the application identifier from a jumplist base
// name: the token before the first dot, conventionally 16 hex characters.
// It is an opaque handle and is not reinterpreted.
func AppIDFromName(name string) string {
	stem, _, _ := strings.Cut(name, ".")
	return strings.ToLower(stem)
}

// Parse decodes the jumplist in b. The base name supplies the application
// identifier and a classification hint; it may be empty.
//
// A returned error means the whole file was undecodable (unknown container,
// unsupported version, header corruption). Recoverable damage surfaces as
// entry-level or file-level decode errors on the returned File instead.
func Parse(b []byte, name string, opts *Options) (*types.File, error) {
	file := &types.File{
		Kind:    Classify(b, name),
		AppID:   AppIDFromName(name),
		Entries: []types.Entry{},
	}
	file.AppName = AppName(file.AppID)

	switch file.Kind {
	case types.KindAutomatic:
		store, err := storage.OpenCFB(b)
		if err != nil {
			return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "open automatic container", Err: err}
		}
		if err := decodeAutomatic(store, file, opts.link()); err != nil {
			return nil, err
		}
	case types.KindCustom:
		if err := decodeCustom(b, file, opts.link()); err != nil {
			return nil, err
		}
	default:
		return nil, types.ErrUnknownContainer
	}
	return file, nil
}

// ParseFile decodes the jumplist at path.
func ParseFile(path string, opts *Options) (*types.File, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindIO, Msg: fmt.Sprintf("open %s", path), Err: err}
	}
	defer cleanup() //nolint:errcheck // read-only mapping

	file, err := Parse(data, filepath.Base(path), opts)
	if err != nil {
		return nil, err
	}
	file.SourcePath = path
	return file, nil
}

// DecodeAutomatic decodes an AutomaticDestinations jumplist through an
// already-open storage view. This is the seam tests and alternate container
// backends use; Parse wires it to the compound file reader.
func DecodeAutomatic(store storage.Store, opts *Options) (*types.File, error) {
	file := &types.File{Kind: types.KindAutomatic, Entries: []types.Entry{}}
	if err := decodeAutomatic(store, file, opts.link()); err != nil {
		return nil, err
	}
	return file, nil
}

// DecodeCustom decodes a CustomDestinations jumplist from its raw bytes.
func DecodeCustom(b []byte, opts *Options) (*types.File, error) {
	file := &types.File{Kind: types.KindCustom, Entries: []types.Entry{}}
	if err := decodeCustom(b, file, opts.link()); err != nil {
		return nil, err
	}
	return file, nil
}

// wrapFormatErr maps the format package's sentinel errors onto the public
// error kinds.
func wrapFormatErr(msg string, err error) *types.Error {
	kind := types.ErrKindFormat
	switch {
	case errors.Is(err, format.ErrUnsupported):
		kind = types.ErrKindVersion
	case errors.Is(err, format.ErrTruncated):
		kind = types.ErrKindTruncated
	}
	return &types.Error{Kind: kind, Msg: msg, Err: err}
}
