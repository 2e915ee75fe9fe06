/*
Package ini parses INI files into an arena-backed, fixed-capacity document.

# Quick Start

	doc, err := ini.ParseFile("app.ini", types.ParseOptions{})
	if err != nil {
	    log.Fatal(err)
	}
	defer doc.Release()

	host, ok := doc.Get("host")

# Grammar

	file       := (ws | comment | section | assignment)*
	section    := '[' ident ']'
	assignment := ident ws? '=' ws? ident
	comment    := ';' any* '\n'
	ident      := (letter | digit | '_')+
	ws         := ' ' | '\t' | '\r' | '\n'

Values are identifiers too: "path=/tmp" is malformed. A comment must end in
a newline.

# Memory

Every byte a Document references lives in one arena sized before parsing
(types.Limits.ArenaSize, or an estimate derived from the input). The input is
copied into the arena first, then every key, value and section name, the
hash table slots and the entry list. Nothing grows: when the arena or the
table is full the parse fails with types.KindAllocatorExhausted or
types.KindTableOverflow.

Strings returned by a Document alias arena memory. They stay valid until
Release.

# Key Scope

With types.ScopeGlobal (the default) a key is global across sections and the
last assignment wins:

	[server]
	port=8080
	[client]
	port=9090   ; Get("port") == "9090"

With types.ScopeSection the table is keyed by "section.key", so both values
are kept and Get("client.port") selects one. Lookup(section, key) works in
either mode.

# Error Handling

Parse errors are *types.Error values carrying a kind and the byte offset of
the failure:

	_, err := ini.Parse(data, types.ParseOptions{})
	if types.IsKind(err, types.KindMalformedInput) {
	    fmt.Println("bad input at", types.OffsetOf(err))
	}

The underlying cause is reachable with errors.Is, e.g. parse.ErrMissingAssign
or table.ErrOverflow.
*/
package ini
