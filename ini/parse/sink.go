package parse

import (
	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/ini/table"
	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/pkg/types"
)

// Sink receives every entry the parser recognises, in scan order.
type Sink interface {
	Record(e Entry) error
}

// SectionSink is implemented by sinks that also track section headers.
// The parser calls RecordSection once per header, duplicates included.
type SectionSink interface {
	RecordSection(name alloc.Span) error
}

// TableSink inserts entries into a hash table, last write wins.
type TableSink struct {
	arena   *alloc.Arena
	table   *table.Table
	scope   types.KeyScope
	scratch []byte
}

// NewTableSink returns a sink writing into t. Keys are resolved through a.
func NewTableSink(a *alloc.Arena, t *table.Table, scope types.KeyScope) *TableSink {
	return &TableSink{arena: a, table: t, scope: scope}
}

// Record implements Sink.
func (s *TableSink) Record(e Entry) error {
	_, err := s.table.Set(s.EffectiveKey(e), e.Value)
	return err
}

// EffectiveKey returns the bytes hashed for e: the bare key, or
// "section.key" when keys are scoped per section and e has a section.
// The result is only valid until the next call.
func (s *TableSink) EffectiveKey(e Entry) []byte {
	key := s.arena.Bytes(e.Key)
	if s.scope != types.ScopeSection || e.Section.IsEmpty() {
		return key
	}
	s.scratch = append(s.scratch[:0], s.arena.Bytes(e.Section)...)
	s.scratch = append(s.scratch, format.ScopeSeparator)
	s.scratch = append(s.scratch, key...)
	return s.scratch
}

// Table returns the underlying table.
func (s *TableSink) Table() *table.Table {
	return s.table
}

// ListSink appends entries to an arena-backed list in scan order.
type ListSink struct {
	arena    *alloc.Arena
	entries  []Entry
	sections []alloc.Span
}

// NewListSink returns an empty list sink allocating from a.
func NewListSink(a *alloc.Arena) *ListSink {
	return &ListSink{arena: a}
}

// Record implements Sink.
func (s *ListSink) Record(e Entry) error {
	entries, err := alloc.Append(s.arena, s.entries, e)
	if err != nil {
		return err
	}
	s.entries = entries
	return nil
}

// RecordSection implements SectionSink.
func (s *ListSink) RecordSection(name alloc.Span) error {
	sections, err := alloc.Append(s.arena, s.sections, name)
	if err != nil {
		return err
	}
	s.sections = sections
	return nil
}

// Sections returns every section header seen, in scan order.
func (s *ListSink) Sections() []alloc.Span {
	return s.sections
}

// Entries returns the recorded entries. The slice aliases arena memory.
func (s *ListSink) Entries() []Entry {
	return s.entries
}

// Len returns the number of recorded entries.
func (s *ListSink) Len() int {
	return len(s.entries)
}

// MultiSink fans every entry out to each sink in order, stopping at the
// first error.
type MultiSink []Sink

// Record implements Sink.
func (m MultiSink) Record(e Entry) error {
	for _, s := range m {
		if err := s.Record(e); err != nil {
			return err
		}
	}
	return nil
}

// RecordSection forwards to every member implementing SectionSink.
func (m MultiSink) RecordSection(name alloc.Span) error {
	for _, s := range m {
		ss, ok := s.(SectionSink)
		if !ok {
			continue
		}
		if err := ss.RecordSection(name); err != nil {
			return err
		}
	}
	return nil
}
