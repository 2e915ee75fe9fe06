package testutil

// Test fixture paths relative to the repository root.
// These constants should be used instead of hardcoding paths in test files.
const (
	// FixtureScenario is the server/client example file.
	FixtureScenario = "testdata/ini/scenario.ini"

	// FixtureWindows1252 carries a Windows-1252 byte (0xE9) in a comment.
	FixtureWindows1252 = "testdata/ini/latin1.ini"

	// FixtureUTF16LE is the scenario file encoded as UTF-16LE with a BOM.
	FixtureUTF16LE = "testdata/ini/scenario-utf16le.ini"

	// FixtureMalformed is missing the closing bracket of its header.
	FixtureMalformed = "testdata/ini/malformed.ini"
)

// Scenario is the content of FixtureScenario.
const Scenario = `[server]
host=localhost
port=8080
; comment line
[client]
timeout=30
`
