package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/ini/printer"
)

var (
	dumpFormat    string
	dumpEffective bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().StringVar(&dumpFormat, "format", string(printer.FormatText), "Output format: text, json, yaml, ini")
	cmd.Flags().BoolVar(&dumpEffective, "effective", false, "Show only the last assignment of each key per section")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Print every entry of an INI file",
		Long: `The dump command parses an INI file and prints its entries in scan order.

The text format prints one "Key: k, Value: v, Section: s" line per entry.

Example:
  inictl dump app.ini
  inictl dump app.ini --format yaml
  inictl dump app.ini --format ini --effective`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	format, err := printer.ParseFormat(dumpFormat)
	if err != nil {
		return err
	}
	if jsonOut {
		format = printer.FormatJSON
	}

	doc, err := openDocument(args[0])
	if err != nil {
		return err
	}
	defer doc.Release()

	opts := printer.DefaultOptions()
	opts.Format = format
	opts.Effective = dumpEffective

	if err := printer.New(doc, os.Stdout, opts).Print(); err != nil {
		return fmt.Errorf("failed to print: %w", err)
	}
	return nil
}
