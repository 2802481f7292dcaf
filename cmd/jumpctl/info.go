package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/jumpkit/pkg/jumplist"
	"github.com/joshuapare/jumpkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "info <jumplist>",
		Short: "Decode a jumplist and report summary metadata",
		Long: `The info command decodes a jumplist file and displays summary metadata:
container type, application identity, format version, and entry counts.

Example:
  jumpctl info 9b9cdc69c1c24e2b.automaticDestinations-ms
  jumpctl info 9b9cdc69c1c24e2b.automaticDestinations-ms --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0], jsonOut)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	return cmd
}

func runInfo(path string, jsonOut bool) error {
	printVerbose("Opening jumplist: %s\n", path)

	f, err := jumplist.ParseFile(path, nil)
	if err != nil {
		return fmt.Errorf("failed to decode jumplist: %w", err)
	}

	pinned := 0
	failed := 0
	for _, e := range f.Entries {
		if e.Pinned {
			pinned++
		}
		if e.Err != nil {
			failed++
		}
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	}

	fmt.Printf("\nJumplist Information:\n")
	fmt.Printf("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		size := stat.Size()
		switch {
		case size < 1024:
			fmt.Printf("  Size: %d bytes\n", size)
		case size < 1024*1024:
			fmt.Printf("  Size: %.1f KB\n", float64(size)/1024)
		default:
			fmt.Printf("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}
	fmt.Printf("  Type: %s\n", f.Kind)
	fmt.Printf("  AppID: %s\n", f.AppID)
	if f.AppName != "" {
		fmt.Printf("  Application: %s\n", f.AppName)
	}
	fmt.Printf("  Format version: %d\n", f.Version)
	fmt.Printf("\nEntries:\n")
	fmt.Printf("  Decoded: %d\n", len(f.Entries))
	if f.Kind == types.KindAutomatic {
		fmt.Printf("  Declared: %d\n", f.DeclaredEntries)
	}
	fmt.Printf("  Pinned: %d\n", pinned)
	if failed > 0 {
		fmt.Printf("  Failed: %d\n", failed)
	}
	if len(f.Categories) > 0 {
		fmt.Printf("\nCategories:\n")
		for _, c := range f.Categories {
			label := c.Name
			if label == "" {
				label = c.ID
			}
			if label == "" {
				fmt.Printf("  %s\n", c.Type)
			} else {
				fmt.Printf("  %s (%s)\n", label, c.Type)
			}
		}
	}
	if len(f.Errs) > 0 {
		fmt.Printf("\nProblems:\n")
		for _, e := range f.Errs {
			fmt.Printf("  %s: %s\n", e.Kind, e.Msg)
		}
	}
	return nil
}
