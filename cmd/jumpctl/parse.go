package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/jumpkit/internal/export"
	"github.com/joshuapare/jumpkit/pkg/jumplist"
	"github.com/joshuapare/jumpkit/pkg/types"
)

// defaultGlobs are the live-system jumplist locations, native and under a
// WSL mount.
var defaultGlobs = []string{
	`C:\Users\*\AppData\Roaming\Microsoft\Windows\Recent\AutomaticDestinations\*.automaticDestinations-ms`,
	`C:\Users\*\AppData\Roaming\Microsoft\Windows\Recent\CustomDestinations\*.customDestinations-ms`,
	"/mnt/c/Users/*/AppData/Roaming/Microsoft/Windows/Recent/AutomaticDestinations/*.automaticDestinations-ms",
	"/mnt/c/Users/*/AppData/Roaming/Microsoft/Windows/Recent/CustomDestinations/*.customDestinations-ms",
}

func init() {
	rootCmd.AddCommand(newParseCmd())
}

func newParseCmd() *cobra.Command {
	var (
		paths     []string
		output    string
		formatStr string
		noHeaders bool
		normalize bool
		jobs      int
	)

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Decode jumplist files and emit their entries",
		Long: `The parse command decodes one or more jumplist files and writes the
recovered entries as CSV, JSON, or JSON lines. Files may be given as
arguments or as glob patterns via --path; with neither, the standard
Windows jumplist locations are searched.

Damaged files are not fatal: every decodable entry is emitted and the
failures are reported on stderr.

Example:
  jumpctl parse 9b9cdc69c1c24e2b.automaticDestinations-ms
  jumpctl parse -p 'evidence/*.customDestinations-ms' -f json -o out.json
  jumpctl parse --normalize -f jsonl evidence/*`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args, paths, output, formatStr, noHeaders, normalize, jobs)
		},
	}

	cmd.Flags().StringSliceVarP(&paths, "path", "p", nil, "Glob pattern(s) of jumplist files to decode")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().
		StringVarP(&formatStr, "output-format", "f", "csv", "Output format: csv, json, or jsonl")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Omit the CSV header row")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Emit flattened per-entry rows in JSON output")
	cmd.Flags().IntVar(&jobs, "jobs", runtime.NumCPU(), "Number of files to decode in parallel")
	return cmd
}

func runParse(args, globs []string, output, formatStr string, noHeaders, normalize bool, jobs int) error {
	form, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}
	if jobs < 1 {
		jobs = 1
	}

	files, err := expandInputs(args, globs)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no jumplist files found")
	}
	printVerbose("Decoding %d file(s) with %d worker(s)\n", len(files), jobs)

	// Decode in parallel, then emit in input order so runs are
	// reproducible.
	results := make([]*types.File, len(files))
	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			f, err := jumplist.ParseFile(path, nil)
			if err != nil {
				printError("%s: %v\n", path, err)
				return nil
			}
			results[i] = f
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	dst := os.Stdout
	if output != "" {
		dst, err = os.Create(output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer dst.Close() //nolint:errcheck // double close after explicit Close below
	}

	w := export.NewWriter(dst, form, export.Options{Normalize: normalize, NoHeaders: noHeaders})
	decoded := 0
	entries := 0
	for _, f := range results {
		if f == nil {
			continue
		}
		for _, e := range f.Errs {
			printError("%s: %v\n", f.SourcePath, e)
		}
		if err := w.WriteFile(f); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		decoded++
		entries += len(f.Entries)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if output != "" {
		if err := dst.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}

	if decoded == 0 {
		return fmt.Errorf("no files decoded")
	}
	printInfo("Decoded %d of %d file(s), %d entries\n", decoded, len(files), entries)
	return nil
}

// expandInputs merges explicit arguments with glob matches. With neither,
// the standard jumplist locations are searched; for those defaults a miss
// is silent, for user-supplied globs it is reported.
func expandInputs(args, globs []string) ([]string, error) {
	files := append([]string(nil), args...)

	userGlobs := globs
	quietMiss := false
	if len(args) == 0 && len(globs) == 0 {
		userGlobs = defaultGlobs
		quietMiss = true
	}
	for _, pattern := range userGlobs {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 && !quietMiss {
			printVerbose("No files match %q\n", pattern)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}
