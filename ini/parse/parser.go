// Package parse recognises INI statements on top of a scan.Cursor and hands
// the resulting entries to one or more sinks.
//
// The grammar:
//
//	file      := (ws | comment | section | assignment)*
//	section   := '[' ident ']'
//	assignment:= ident ws? '=' ws? ident
//	comment   := ';' any* '\n'
//	ident     := (letter | digit | '_')+
//	ws        := ' ' | '\t' | '\r' | '\n'
//
// Parsing is a single forward pass with no backtracking. The first problem
// stops the parse and is returned as a *types.Error carrying its byte offset.
package parse

import (
	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/ini/scan"
	"github.com/joshuapare/inikit/internal/format"
	"github.com/sirupsen/logrus"
)

// State names the parser's position in the statement state machine.
type State int

const (
	StateStatementStart State = iota
	StateSectionHeader
	StateComment
	StateKeyValue
	StateEnd
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStatementStart:
		return "statement-start"
	case StateSectionHeader:
		return "section-header"
	case StateComment:
		return "comment"
	case StateKeyValue:
		return "key-value"
	case StateEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Stats counts the statements seen so far.
type Stats struct {
	Sections int
	Comments int
	Entries  int
}

// Parser walks one input buffer. It is single-use and not safe for
// concurrent use.
type Parser struct {
	cur     scan.Cursor
	arena   *alloc.Arena
	sink    Sink
	section alloc.Span
	state   State
	stats   Stats
	err     error
	log     logrus.FieldLogger
}

// New returns a parser over input that copies literals into a and records
// entries into sink. log may be nil.
func New(input []byte, a *alloc.Arena, sink Sink, log logrus.FieldLogger) *Parser {
	return &Parser{
		cur:   scan.New(input),
		arena: a,
		sink:  sink,
		log:   log,
	}
}

// Run parses until end of input or the first error.
func (p *Parser) Run() error {
	for {
		more, err := p.Next()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Next skips whitespace and parses one statement. It returns false once the
// end of input was reached or an error occurred; errors are sticky.
func (p *Parser) Next() (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if p.state == StateEnd {
		return false, nil
	}

	p.state = StateStatementStart
	p.cur = p.cur.SkipWhitespace()

	var err error
	switch ch := p.cur.Char(); {
	case p.cur.AtEOF():
		p.state = StateEnd
		return false, nil
	case ch == format.SectionOpen:
		p.state = StateSectionHeader
		err = p.parseSection()
	case ch == format.CommentPrefix:
		p.state = StateComment
		err = p.parseComment()
	case scan.IsIdentChar(ch):
		p.state = StateKeyValue
		err = p.parseKeyValue()
	default:
		err = wrap(p.cur.Pos(), ErrIllegalToken)
	}

	if err != nil {
		p.err = err
		if p.log != nil {
			p.log.WithField("state", p.state.String()).WithError(err).Debug("parse failed")
		}
		return false, err
	}
	return true, nil
}

// parseSection handles '[' ident ']'. The new name replaces the current section.
func (p *Parser) parseSection() error {
	start := p.cur.Pos()
	p.cur = p.cur.Advance()
	if p.cur.AtEOF() || !scan.IsIdentChar(p.cur.Char()) {
		return wrap(p.cur.Pos(), ErrBadSectionName)
	}

	cur, name, err := p.cur.ReadLiteralCopy(p.arena)
	if err != nil {
		return wrap(p.cur.Pos(), err)
	}
	p.cur = cur

	if p.cur.AtEOF() || p.cur.Char() != format.SectionClose {
		return wrap(p.cur.Pos(), ErrMissingCloseBracket)
	}
	p.cur = p.cur.Advance()

	if ss, ok := p.sink.(SectionSink); ok {
		if err := ss.RecordSection(name); err != nil {
			return wrap(start, err)
		}
	}
	p.section = name
	p.stats.Sections++
	if p.log != nil {
		p.log.WithFields(logrus.Fields{
			"offset":  start,
			"section": p.arena.String(name),
		}).Debug("section")
	}
	return nil
}

// parseComment discards everything up to the newline.
func (p *Parser) parseComment() error {
	cur, err := p.cur.SkipToEndOfLine()
	if err != nil {
		return wrap(cur.Pos(), err)
	}
	p.cur = cur
	p.stats.Comments++
	return nil
}

// parseKeyValue handles ident ws? '=' ws? ident.
func (p *Parser) parseKeyValue() error {
	start := p.cur.Pos()
	cur, key, err := p.cur.ReadLiteralCopy(p.arena)
	if err != nil {
		return wrap(p.cur.Pos(), err)
	}
	p.cur = cur.SkipWhitespace()

	if p.cur.AtEOF() || p.cur.Char() != format.Assign {
		return wrap(p.cur.Pos(), ErrMissingAssign)
	}
	p.cur = p.cur.Advance().SkipWhitespace()

	if p.cur.AtEOF() || !scan.IsIdentChar(p.cur.Char()) {
		return wrap(p.cur.Pos(), ErrMissingValue)
	}
	cur, val, err := p.cur.ReadLiteralCopy(p.arena)
	if err != nil {
		return wrap(p.cur.Pos(), err)
	}
	p.cur = cur

	e := Entry{Key: key, Value: val, Section: p.section}
	if err := p.sink.Record(e); err != nil {
		return wrap(start, err)
	}
	p.stats.Entries++

	if p.log != nil {
		p.log.WithFields(logrus.Fields{
			"offset":  start,
			"section": p.arena.String(p.section),
			"key":     p.arena.String(key),
		}).Debug("assignment")
	}
	return nil
}

// State returns the state of the last statement parsed.
func (p *Parser) State() State {
	return p.state
}

// Section returns the current section name span (empty for the default section).
func (p *Parser) Section() alloc.Span {
	return p.section
}

// Offset returns the cursor's byte offset.
func (p *Parser) Offset() int {
	return p.cur.Pos()
}

// Stats returns statement counts.
func (p *Parser) Stats() Stats {
	return p.stats
}
