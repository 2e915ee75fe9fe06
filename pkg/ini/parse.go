package ini

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/ini/parse"
	"github.com/joshuapare/inikit/ini/table"
	"github.com/joshuapare/inikit/internal/buf"
	"github.com/joshuapare/inikit/internal/format"
	"github.com/joshuapare/inikit/internal/mmfile"
	"github.com/joshuapare/inikit/internal/textenc"
	"github.com/joshuapare/inikit/pkg/types"
)

// ParseFile parses the INI file at path.
//
// The file is mapped read-only, decoded and copied into the document arena,
// then unmapped before parsing starts.
func ParseFile(path string, opts types.ParseOptions) (*Document, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, types.NewError(types.KindIO, types.NoOffset, fmt.Sprintf("open %s", path), err)
	}

	doc, err := parseMapped(data, cleanup, opts)
	if err != nil {
		return nil, err
	}
	if opts.Logger != nil {
		opts.Logger.WithField("path", path).Debug("file parsed")
	}
	return doc, nil
}

// parseMapped parses data and unmaps it before returning.
// The arena holds its own copy, so the mapping is not needed afterwards.
func parseMapped(data []byte, cleanup func() error, opts types.ParseOptions) (*Document, error) {
	doc, perr := Parse(data, opts)
	if cerr := cleanup(); cerr != nil && perr == nil {
		doc.Release()
		return nil, types.NewError(types.KindIO, types.NoOffset, "unmap input", cerr)
	}
	return doc, perr
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader, opts types.ParseOptions) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, types.NewError(types.KindIO, types.NoOffset, "read input", err)
	}
	return Parse(data, opts)
}

// Parse parses data into a new Document.
//
// data is not retained: it is decoded according to opts.InputEncoding (a BOM
// takes precedence) and copied into the document arena.
func Parse(data []byte, opts types.ParseOptions) (*Document, error) {
	if err := opts.Limits.Validate(); err != nil {
		return nil, err
	}

	text, err := textenc.Decode(data, opts.InputEncoding)
	if err != nil {
		kind := types.KindMalformedInput
		if errors.Is(err, textenc.ErrUnsupportedEncoding) {
			kind = types.KindConfig
		}
		return nil, types.NewError(kind, types.NoOffset, "decode input", err)
	}

	capacity := opts.Limits.Capacity()
	need, ok := arenaEstimate(text, capacity, opts.Scope)
	if !ok {
		return nil, types.NewError(types.KindConfig, types.NoOffset,
			fmt.Sprintf("input of %d bytes is too large", len(text)), nil)
	}
	a := alloc.New(opts.Limits.ArenaSizeFor(need))

	doc, err := parseInto(a, text, capacity, opts)
	if err != nil {
		a.Release()
		return nil, err
	}
	return doc, nil
}

func parseInto(a *alloc.Arena, text []byte, capacity int, opts types.ParseOptions) (*Document, error) {
	tbl, err := table.New(a, capacity)
	if err != nil {
		return nil, types.NewError(types.KindAllocatorExhausted, 0, "allocate table", err)
	}
	in, err := a.CopyBytes(text)
	if err != nil {
		return nil, types.NewError(types.KindAllocatorExhausted, 0, "copy input", err)
	}

	list := parse.NewListSink(a)
	p := parse.New(a.Bytes(in), a, parse.MultiSink{
		parse.NewTableSink(a, tbl, opts.Scope),
		list,
	}, opts.Logger)
	if err := p.Run(); err != nil {
		return nil, err
	}

	doc := &Document{
		arena:    a,
		table:    tbl,
		entries:  list.Entries(),
		sections: list.Sections(),
		scope:    opts.Scope,
		parse:    p.Stats(),
	}
	if opts.Logger != nil {
		opts.Logger.WithFields(logrus.Fields{
			"arena_used": a.Len(),
			"table_len":  tbl.Len(),
		}).Debug("parsed")
	}
	return doc, nil
}

// arenaEstimate bounds the arena bytes a parse of text can consume: the slot
// array, the input copy, one padded copy of every literal, the table's key
// copies, and the entry and section lists including the arrays Append leaves
// behind when growing. Every assignment holds one '=' and every header one '['.
// ok is false when the bound overflows int.
func arenaEstimate(text []byte, capacity int, scope types.KeyScope) (int, bool) {
	assigns := bytes.Count(text, []byte{format.Assign})
	headers := bytes.Count(text, []byte{format.SectionOpen})
	keys := min(assigns, capacity/2)

	need := buf.NewSize(format.Align8(len(text)))
	need.AddMul(capacity, table.SlotSize)
	need.Add(len(text))
	need.AddMul(2*assigns+headers, format.Alignment)
	need.AddMul(4*assigns, parse.EntrySize)
	need.AddMul(4*headers, alloc.SpanSize)
	if scope == types.ScopeSection {
		// "section.key": neither half is longer than a line.
		need.AddMul(keys, 2*longestLine(text)+1+format.Alignment)
	} else {
		need.Add(len(text))
		need.AddMul(keys, format.Alignment)
	}
	return need.Total()
}

func longestLine(text []byte) int {
	longest := 0
	for len(text) > 0 {
		n := bytes.IndexByte(text, format.LineFeed)
		if n < 0 {
			n = len(text)
		}
		longest = max(longest, n)
		text = text[min(n+1, len(text)):]
	}
	return longest
}
