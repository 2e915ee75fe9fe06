package printer

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonEntry represents one assignment in JSON format.
type jsonEntry struct {
	Section string `json:"section,omitempty"`
	Key     string `json:"key"`
	Value   string `json:"value"`
}

// printJSON prints the entries as one JSON array.
func (p *Printer) printJSON() error {
	entries := p.entries()
	out := make([]jsonEntry, len(entries))
	for i, e := range entries {
		out[i] = jsonEntry{Section: e.Section, Key: e.Key, Value: e.Value}
	}

	data, err := json.MarshalIndent(out, "", strings.Repeat(" ", p.opts.IndentSize))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(p.writer, "%s\n", data)
	return err
}
