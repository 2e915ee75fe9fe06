package ini

import (
	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/ini/parse"
	"github.com/joshuapare/inikit/ini/table"
	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/pkg/types"
)

// Entry is one assignment in scan order. Section is "" for the default section.
type Entry struct {
	Key     string
	Value   string
	Section string
}

// Stats reports resource usage of a parsed document.
type Stats struct {
	ArenaUsed int // Bytes consumed, alignment padding included
	ArenaPeak int // High-water mark of ArenaUsed
	ArenaCap  int // Arena capacity

	Table table.Stats

	Sections int // Section headers, duplicates included
	Comments int // Comment lines
	Entries  int // Assignments, overwritten ones included
}

// Document is a parsed INI file. All strings it returns alias its arena and
// stay valid until Release. A Document is safe for concurrent reads.
type Document struct {
	arena    *alloc.Arena
	table    *table.Table
	entries  []parse.Entry
	sections []alloc.Span
	scope    types.KeyScope
	parse    parse.Stats
}

// Get returns the value stored for key.
//
// Under types.ScopeSection keys of a named section are addressed as
// "section.key"; keys before the first header use the bare key.
func (d *Document) Get(key string) (string, bool) {
	if d.released() {
		return "", false
	}
	v, ok := d.table.GetString(key)
	if !ok {
		return "", false
	}
	return d.arena.String(v), true
}

// Lookup returns the value of key within section ("" for the default
// section). Under types.ScopeGlobal it reports the last assignment made in
// that section, which Get may no longer return if a later section reassigned
// the key.
func (d *Document) Lookup(section, key string) (string, bool) {
	if d.released() {
		return "", false
	}
	if d.scope == types.ScopeSection {
		if section == "" {
			return d.Get(key)
		}
		return d.Get(section + string(format.ScopeSeparator) + key)
	}
	for i := len(d.entries) - 1; i >= 0; i-- {
		e := d.entries[i]
		if d.arena.String(e.Key) == key && d.arena.String(e.Section) == section {
			return d.arena.String(e.Value), true
		}
	}
	return "", false
}

// Len returns the number of distinct keys in the table.
func (d *Document) Len() int {
	if d.released() {
		return 0
	}
	return d.table.Len()
}

// Entries returns every assignment in scan order, overwritten ones included.
func (d *Document) Entries() []Entry {
	if d.released() {
		return nil
	}
	out := make([]Entry, len(d.entries))
	for i, e := range d.entries {
		out[i] = Entry{
			Key:     d.arena.String(e.Key),
			Value:   d.arena.String(e.Value),
			Section: d.arena.String(e.Section),
		}
	}
	return out
}

// Sections returns the distinct section names in order of first appearance.
// The default section is not listed.
func (d *Document) Sections() []string {
	if d.released() {
		return nil
	}
	seen := make(map[string]struct{}, len(d.sections))
	var out []string
	for _, sp := range d.sections {
		name := d.arena.String(sp)
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// Scope returns the key scope the document was parsed with.
func (d *Document) Scope() types.KeyScope {
	return d.scope
}

// Stats returns resource usage figures.
func (d *Document) Stats() Stats {
	st := Stats{
		ArenaUsed: d.arena.Len(),
		ArenaPeak: d.arena.Peak(),
		ArenaCap:  d.arena.Cap(),
		Sections:  d.parse.Sections,
		Comments:  d.parse.Comments,
		Entries:   d.parse.Entries,
	}
	if !d.released() {
		st.Table = d.table.Stats()
	}
	return st
}

// Release drops the arena. Strings obtained earlier must not be used
// afterwards; further lookups report nothing. Release is idempotent.
func (d *Document) Release() {
	if d == nil || d.released() {
		return
	}
	d.entries = nil
	d.sections = nil
	d.arena.Release()
}

func (d *Document) released() bool {
	return d.arena.Released()
}
