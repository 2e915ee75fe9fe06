package types

import (
	"github.com/sirupsen/logrus"
)

// KeyScope selects the effective hash key of an assignment.
type KeyScope int

const (
	// ScopeGlobal hashes the bare key: a key repeated under a later section
	// overwrites the earlier value (last-write-wins across the file).
	ScopeGlobal KeyScope = iota

	// ScopeSection hashes "section.key", so equal keys under different
	// sections are distinct entries.
	ScopeSection
)

// String returns the flag spelling of the scope.
func (s KeyScope) String() string {
	switch s {
	case ScopeGlobal:
		return "global"
	case ScopeSection:
		return "section"
	default:
		return "unknown"
	}
}

// ParseKeyScope maps a flag value to a KeyScope.
func ParseKeyScope(s string) (KeyScope, error) {
	switch s {
	case "", "global":
		return ScopeGlobal, nil
	case "section":
		return ScopeSection, nil
	default:
		return 0, NewError(KindConfig, NoOffset, "unknown key scope "+s, nil)
	}
}

// ParseOptions controls a parse. The zero value is usable.
type ParseOptions struct {
	// Limits sizes the arena and the hash table.
	// Zero fields select defaults.
	Limits Limits

	// Scope selects how keys are hashed.
	// Default: ScopeGlobal
	Scope KeyScope

	// InputEncoding names the input encoding when no BOM is present.
	// Supported values: "", "UTF-8", "UTF-16LE", "WINDOWS-1252".
	// Default: UTF-8
	InputEncoding string

	// Logger receives Debug traces of every recognised statement.
	// If nil, nothing is logged.
	Logger logrus.FieldLogger
}
