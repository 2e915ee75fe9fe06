package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/inikit/pkg/ini"
)

const (
	DefaultIndentSize = 2
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs one "Key: k, Value: v, Section: s" line per entry.
	FormatText Format = "text"

	// FormatJSON outputs a JSON array of entries.
	FormatJSON Format = "json"

	// FormatYAML outputs a YAML mapping of sections to key/value mappings.
	FormatYAML Format = "yaml"

	// FormatINI re-emits the document as an INI file.
	FormatINI Format = "ini"
)

// Formats lists every supported format, in flag help order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatINI}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("printer: unknown format %q", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, yaml, ini).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (json and yaml only).
	// Default: 2
	IndentSize int

	// Effective collapses repeated assignments of a key within a section to
	// the last one. YAML output is always collapsed.
	// Default: false
	Effective bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
		Effective:  false,
	}
}

// Source is the document being printed.
type Source interface {
	// Entries returns every assignment in scan order.
	Entries() []ini.Entry
	// Sections returns distinct section names in order of first appearance.
	Sections() []string
}

// Printer handles formatted output of INI documents.
type Printer struct {
	opts   Options
	writer io.Writer
	src    Source
}

// New creates a new Printer.
//
// Example:
//
//	doc, _ := ini.ParseFile("app.ini", types.ParseOptions{})
//	p := printer.New(doc, os.Stdout, printer.DefaultOptions())
//	p.Print()
func New(src Source, w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.Format == "" {
		opts.Format = FormatText
	}
	return &Printer{
		src:    src,
		writer: w,
		opts:   opts,
	}
}

// Print writes the whole document in the configured format.
func (p *Printer) Print() error {
	switch p.opts.Format {
	case FormatText:
		return p.printText()
	case FormatJSON:
		return p.printJSON()
	case FormatYAML:
		return p.printYAML()
	case FormatINI:
		return p.printINI()
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}

// entries returns the entries to print, in scan order.
func (p *Printer) entries() []ini.Entry {
	if p.opts.Effective {
		return collapse(p.src.Entries())
	}
	return p.src.Entries()
}

type entryKey struct {
	section, key string
}

// collapse keeps one entry per (section, key) at the position of its first
// assignment, carrying the value of its last one.
func collapse(entries []ini.Entry) []ini.Entry {
	index := make(map[entryKey]int, len(entries))
	out := make([]ini.Entry, 0, len(entries))
	for _, e := range entries {
		k := entryKey{e.Section, e.Key}
		if i, ok := index[k]; ok {
			out[i].Value = e.Value
			continue
		}
		index[k] = len(out)
		out = append(out, e)
	}
	return out
}

// group is the entries of one section.
type group struct {
	name    string
	entries []ini.Entry
}

// groups splits entries by section. The default section comes first when it
// holds entries, then every named section in order of first appearance,
// including sections without entries.
func (p *Printer) groups(entries []ini.Entry) []group {
	sections := p.src.Sections()
	out := make([]group, 0, len(sections)+1)
	out = append(out, group{})
	pos := make(map[string]int, len(sections))
	for _, name := range sections {
		pos[name] = len(out)
		out = append(out, group{name: name})
	}

	for _, e := range entries {
		i, ok := pos[e.Section]
		if !ok {
			i = 0
		}
		out[i].entries = append(out[i].entries, e)
	}

	if len(out[0].entries) == 0 {
		out = out[1:]
	}
	return out
}
