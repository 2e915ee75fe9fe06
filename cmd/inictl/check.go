package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newCheckCmd())
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate one or more INI files",
		Long: `The check command parses every file and reports which ones fail.
All files are checked; the command fails if any of them does.

Example:
  inictl check app.ini
  inictl check conf.d/*.ini --table-capacity 256
  inictl check a.ini b.ini --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args)
		},
	}
	return cmd
}

// checkResult is the outcome for one file.
type checkResult struct {
	File   string `json:"file"`
	Valid  bool   `json:"valid"`
	Kind   string `json:"kind,omitempty"`
	Offset *int   `json:"offset,omitempty"`
	Error  string `json:"error,omitempty"`
	Keys   int    `json:"keys"`
}

func runCheck(args []string) error {
	// Options errors apply to every file; report them once.
	if _, err := parseOptions(); err != nil {
		return err
	}

	results := make([]checkResult, 0, len(args))
	var errs []error
	for _, path := range args {
		res := checkResult{File: path, Valid: true}
		doc, err := openDocument(path)
		if err != nil {
			res.Valid = false
			res.Error = err.Error()
			if kind, ok := types.KindOf(err); ok {
				res.Kind = kind.String()
			}
			if off := types.OffsetOf(err); off != types.NoOffset {
				res.Offset = &off
			}
			errs = append(errs, err)
		} else {
			res.Keys = doc.Len()
			doc.Release()
		}
		results = append(results, res)
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
		return errors.Join(errs...)
	}

	for _, res := range results {
		if res.Valid {
			printInfo("✓ %s (%d keys)\n", res.File, res.Keys)
		} else {
			printInfo("✗ %s\n", res.Error)
		}
	}
	printInfo("\n%d of %d files valid\n", len(results)-len(errs), len(results))

	return errors.Join(errs...)
}
