package printer

import (
	"bufio"
)

// printINI re-emits the document. Entries of a section repeated in the input
// are written under a single header.
func (p *Printer) printINI() error {
	w := bufio.NewWriter(p.writer)
	for i, g := range p.groups(p.entries()) {
		if g.name != "" {
			if i > 0 {
				w.WriteByte('\n')
			}
			w.WriteString("[" + g.name + "]\n")
		}
		for _, e := range g.entries {
			w.WriteString(e.Key + "=" + e.Value + "\n")
		}
	}
	return w.Flush()
}
