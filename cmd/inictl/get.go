package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getSection string

func init() {
	cmd := newGetCmd()
	cmd.Flags().StringVar(&getSection, "section", "", "Look the key up within this section")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Print the value of a key",
		Long: `The get command prints the value stored for a key.

Without --section the hash table is queried directly: under the default
global scope the last assignment of the key anywhere in the file wins, under
--scope section the key is written as "section.key".

Example:
  inictl get app.ini host
  inictl get app.ini port --section server
  inictl get app.ini server.port --scope section`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	path, key := args[0], args[1]

	doc, err := openDocument(path)
	if err != nil {
		return err
	}
	defer doc.Release()

	var (
		value string
		ok    bool
	)
	if getSection != "" {
		value, ok = doc.Lookup(getSection, key)
	} else {
		value, ok = doc.Get(key)
	}
	if !ok {
		if getSection != "" {
			return fmt.Errorf("key %q not found in section %q", key, getSection)
		}
		return fmt.Errorf("key %q not found", key)
	}

	if jsonOut {
		return printJSON(map[string]string{
			"key":     key,
			"section": getSection,
			"value":   value,
		})
	}
	printInfo("%s\n", value)
	return nil
}
