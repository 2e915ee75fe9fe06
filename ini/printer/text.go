package printer

import (
	"fmt"
)

// printText prints one line per entry.
func (p *Printer) printText() error {
	for _, e := range p.entries() {
		if _, err := fmt.Fprintf(p.writer, "Key: %s, Value: %s, Section: %s\n", e.Key, e.Value, e.Section); err != nil {
			return err
		}
	}
	return nil
}
