// Package export renders decoded jumplist files as CSV, JSON, or JSON
// lines. CSV output is always the flattened per-entry table; the JSON
// formats can carry either the flattened rows or the full structured
// result.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/joshuapare/jumpkit/pkg/jumplist"
	"github.com/joshuapare/jumpkit/pkg/types"
)

// Format selects the output rendering.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatJSONL
)

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatJSON:
		return "json"
	case FormatJSONL:
		return "jsonl"
	default:
		return "unknown"
	}
}

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "jsonl":
		return FormatJSONL, nil
	default:
		return 0, fmt.Errorf("unknown output format %q (want csv, json, or jsonl)", s)
	}
}

// Options tunes the writer.
type Options struct {
	// Normalize emits flattened per-entry rows instead of structured files.
	// CSV output is always normalized regardless of this setting.
	Normalize bool
	// NoHeaders suppresses the CSV header row.
	NoHeaders bool
}

// Writer streams decoded files to dst in one format. Files may arrive in
// any order; the writer owns framing (CSV header, JSON array brackets).
// Close must be called to complete the output.
type Writer struct {
	dst  io.Writer
	form Format
	opts Options

	csv        *csv.Writer
	wroteCSVHd bool

	// JSON array output is framed incrementally so large batches stream.
	wroteJSONFirst bool
}

// NewWriter creates a writer emitting form to dst.
func NewWriter(dst io.Writer, form Format, opts Options) *Writer {
	w := &Writer{dst: dst, form: form, opts: opts}
	if form == FormatCSV {
		w.csv = csv.NewWriter(dst)
	}
	return w
}

// WriteFile renders one decoded file.
func (w *Writer) WriteFile(f *types.File) error {
	switch w.form {
	case FormatCSV:
		return w.writeCSV(f)
	case FormatJSON:
		return w.writeJSONItem(f)
	case FormatJSONL:
		return w.writeJSONLines(f)
	default:
		return fmt.Errorf("unknown output format %d", w.form)
	}
}

// Close flushes buffered output and emits any trailing framing.
func (w *Writer) Close() error {
	switch w.form {
	case FormatCSV:
		w.csv.Flush()
		return w.csv.Error()
	case FormatJSON:
		if !w.wroteJSONFirst {
			_, err := io.WriteString(w.dst, "[]\n")
			return err
		}
		_, err := io.WriteString(w.dst, "\n]\n")
		return err
	default:
		return nil
	}
}

func (w *Writer) writeCSV(f *types.File) error {
	if !w.wroteCSVHd && !w.opts.NoHeaders {
		if err := w.csv.Write(types.NormalHeader()); err != nil {
			return err
		}
	}
	w.wroteCSVHd = true
	for _, row := range jumplist.Normalize(f) {
		if err := w.csv.Write(row.Row()); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeJSONItem(f *types.File) error {
	items := []any{any(f)}
	if w.opts.Normalize {
		items = items[:0]
		for _, row := range jumplist.Normalize(f) {
			items = append(items, row)
		}
	}
	for _, item := range items {
		sep := ",\n"
		if !w.wroteJSONFirst {
			sep = "[\n"
			w.wroteJSONFirst = true
		}
		if _, err := io.WriteString(w.dst, sep); err != nil {
			return err
		}
		b, err := json.MarshalIndent(item, "  ", "  ")
		if err != nil {
			return err
		}
		if _, err := w.dst.Write(append([]byte("  "), b...)); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeJSONLines(f *types.File) error {
	enc := json.NewEncoder(w.dst)
	if !w.opts.Normalize {
		return enc.Encode(f)
	}
	for _, row := range jumplist.Normalize(f) {
		if err := enc.Encode(row); err != nil {
			return err
		}
	}
	return nil
}
