package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/joshuapare/inikit/pkg/types"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// Parse limits and options
	arenaSize     int
	tableCapacity int
	scopeFlag     string
	encodingFlag  string
)

var rootCmd = &cobra.Command{
	Use:   "inictl",
	Short: "Parse and inspect INI files",
	Long: `inictl parses INI files into a fixed-size arena and hash table and
prints, queries, validates or measures the result.

Every parse is bounded: the arena and the table never grow, so a file with
too many keys fails with a table overflow instead of consuming memory.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")

	rootCmd.PersistentFlags().IntVar(&arenaSize, "arena-size", 0, "Arena size in bytes (0 = sized from input)")
	rootCmd.PersistentFlags().
		IntVar(&tableCapacity, "table-capacity", 0, "Hash table slots, a power of two (0 = 64)")
	rootCmd.PersistentFlags().StringVar(&scopeFlag, "scope", "global", "Key scope: global or section")
	rootCmd.PersistentFlags().
		StringVar(&encodingFlag, "encoding", "", "Input encoding without BOM: UTF-8, UTF-16LE, WINDOWS-1252")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger returns the stderr logger for the current verbosity flags.
func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case quiet:
		log.SetLevel(logrus.ErrorLevel)
	case verbose:
		log.SetLevel(logrus.DebugLevel)
	default:
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}

// parseOptions builds parse options from the global flags.
func parseOptions() (types.ParseOptions, error) {
	scope, err := types.ParseKeyScope(scopeFlag)
	if err != nil {
		return types.ParseOptions{}, err
	}
	opts := types.ParseOptions{
		Limits: types.Limits{
			ArenaSize:     arenaSize,
			TableCapacity: tableCapacity,
		},
		Scope:         scope,
		InputEncoding: encodingFlag,
		Logger:        newLogger(),
	}
	if err := opts.Limits.Validate(); err != nil {
		return types.ParseOptions{}, err
	}
	return opts, nil
}

// openDocument parses path with the global flags.
func openDocument(path string) (*ini.Document, error) {
	opts, err := parseOptions()
	if err != nil {
		return nil, err
	}
	printVerbose("Parsing: %s\n", path)
	doc, err := ini.ParseFile(path, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
