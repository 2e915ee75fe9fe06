package parse

import (
	"errors"

	"github.com/joshuapare/inikit/ini/alloc"
	"github.com/joshuapare/inikit/ini/scan"
	"github.com/joshuapare/inikit/ini/table"
	"github.com/joshuapare/inikit/pkg/types"
)

// Malformed-input causes. Every one is reported wrapped in a *types.Error of
// kind types.KindMalformedInput carrying the offset of the offending byte.
var (
	// ErrIllegalToken indicates a character that cannot start a statement.
	ErrIllegalToken = errors.New("parse: illegal token")

	// ErrBadSectionName indicates '[' not followed by an identifier character.
	ErrBadSectionName = errors.New("parse: invalid section name start")

	// ErrMissingCloseBracket indicates a section name not followed by ']'.
	ErrMissingCloseBracket = errors.New("parse: missing ']' after section name")

	// ErrMissingAssign indicates a key not followed by '='.
	ErrMissingAssign = errors.New("parse: missing '=' after key")

	// ErrMissingValue indicates '=' not followed by a value literal.
	ErrMissingValue = errors.New("parse: missing value after '='")

	// ErrUnterminatedComment indicates a comment running into end of input.
	ErrUnterminatedComment = scan.ErrUnterminatedComment
)

// kindOf maps a failure cause onto the error taxonomy.
func kindOf(err error) types.ErrKind {
	if k, ok := types.KindOf(err); ok {
		return k
	}
	switch {
	case errors.Is(err, alloc.ErrOutOfMemory), errors.Is(err, alloc.ErrReleased):
		return types.KindAllocatorExhausted
	case errors.Is(err, table.ErrOverflow):
		return types.KindTableOverflow
	default:
		return types.KindMalformedInput
	}
}

// wrap turns a cause detected at offset into a typed error.
// Errors that are already typed pass through unchanged.
func wrap(offset int, err error) error {
	var te *types.Error
	if errors.As(err, &te) {
		return err
	}
	return types.NewError(kindOf(err), offset, "", err)
}
