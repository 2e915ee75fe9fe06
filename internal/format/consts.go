// Package format holds the byte-level constants shared by the INI scanner,
// the arena allocator and the hash table. Keeping them in one place lets the
// lower layers agree on sentinels and alignment without importing each other.
package format

const (
	// ============================================================================
	// Structural Tokens
	// ============================================================================

	// SectionOpen starts a section header: [name]
	SectionOpen byte = '['

	// SectionClose ends a section header.
	SectionClose byte = ']'

	// Assign separates a key from its value.
	Assign byte = '='

	// CommentPrefix starts a comment that runs to the end of the line.
	CommentPrefix byte = ';'

	// Underscore is the only punctuation allowed inside identifiers.
	Underscore byte = '_'

	// ============================================================================
	// Whitespace
	// ============================================================================

	Space          byte = ' '
	Tab            byte = '\t'
	CarriageReturn byte = '\r'
	LineFeed       byte = '\n'

	// EOF is the sentinel current character once the cursor runs past the end
	// of the input. A NUL byte inside the input is not EOF; the cursor tracks
	// that separately.
	EOF byte = 0

	// ============================================================================
	// Arena Layout
	// ============================================================================

	// Alignment is the only alignment the arena hands out.
	Alignment = 8

	// AlignmentMask is used to round offsets up to Alignment.
	AlignmentMask = Alignment - 1

	// DefaultArenaSize is the arena capacity used when none is configured and
	// the input is small.
	DefaultArenaSize = 64 * 1024 // 64KB

	// ArenaSlack is the headroom added on top of the input-derived estimate
	// when sizing an arena automatically.
	ArenaSlack = 4096

	// ============================================================================
	// Hash Table Layout
	// ============================================================================

	// DefaultTableCapacity is the slot count of a table when none is configured.
	// Must be a power of two.
	DefaultTableCapacity = 64

	// MinTableCapacity is the smallest accepted slot count.
	MinTableCapacity = 2

	// MaxLoadNumerator / MaxLoadDenominator cap the load factor at 50%.
	MaxLoadNumerator   = 1
	MaxLoadDenominator = 2

	// ============================================================================
	// FNV-1a (32-bit)
	// ============================================================================

	FNVOffset32 uint32 = 2166136261
	FNVPrime32  uint32 = 16777619

	// ScopeSeparator joins section and key when keys are scoped per section.
	// Identifiers never contain it, so composed keys cannot collide.
	ScopeSeparator byte = '.'
)
