package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/inikit/internal/testutil"
	"github.com/joshuapare/inikit/pkg/ini"
	"github.com/joshuapare/inikit/pkg/types"
)

// parseDoc parses input with default options.
func parseDoc(t *testing.T, input string) *ini.Document {
	t.Helper()
	doc, err := ini.Parse([]byte(input), types.ParseOptions{})
	require.NoError(t, err)
	t.Cleanup(doc.Release)
	return doc
}

func render(t *testing.T, src Source, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, New(src, &buf, opts).Print())
	return buf.String()
}

const repeated = `top=1
[a]
x=1
[b]
y=2
[a]
x=3
z=4
[empty]
`

func TestPrinter_Text(t *testing.T) {
	out := render(t, parseDoc(t, testutil.Scenario), DefaultOptions())
	assert.Equal(t, "Key: host, Value: localhost, Section: server\n"+
		"Key: port, Value: 8080, Section: server\n"+
		"Key: timeout, Value: 30, Section: client\n", out)
}

func TestPrinter_TextEffective(t *testing.T) {
	opts := DefaultOptions()
	opts.Effective = true
	out := render(t, parseDoc(t, repeated), opts)
	assert.Equal(t, "Key: top, Value: 1, Section: \n"+
		"Key: x, Value: 3, Section: a\n"+
		"Key: y, Value: 2, Section: b\n"+
		"Key: z, Value: 4, Section: a\n", out)
}

func TestPrinter_JSON(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatJSON
	out := render(t, parseDoc(t, repeated), opts)

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)
	assert.Equal(t, map[string]string{"key": "top", "value": "1"}, got[0])
	assert.Equal(t, map[string]string{"section": "a", "key": "x", "value": "3"}, got[3])
	assert.True(t, strings.HasPrefix(out, "[\n  {"))
}

func TestPrinter_YAML(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatYAML
	out := render(t, parseDoc(t, repeated), opts)

	var got map[string]map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, map[string]map[string]string{
		"":      {"top": "1"},
		"a":     {"x": "3", "z": "4"},
		"b":     {"y": "2"},
		"empty": {},
	}, got)

	// Document order is kept.
	assert.Less(t, strings.Index(out, "a:"), strings.Index(out, "b:"))
	assert.Less(t, strings.Index(out, "b:"), strings.Index(out, "empty:"))
}

func TestPrinter_YAMLQuotesNumbers(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatYAML
	out := render(t, parseDoc(t, testutil.Scenario), opts)

	var got map[string]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "8080", got["server"]["port"])
}

func TestPrinter_INI(t *testing.T) {
	opts := DefaultOptions()
	opts.Format = FormatINI
	out := render(t, parseDoc(t, repeated), opts)
	assert.Equal(t, "top=1\n\n[a]\nx=1\nx=3\nz=4\n\n[b]\ny=2\n\n[empty]\n", out)

	opts.Effective = true
	out = render(t, parseDoc(t, repeated), opts)
	assert.Equal(t, "top=1\n\n[a]\nx=3\nz=4\n\n[b]\ny=2\n\n[empty]\n", out)
}

func TestPrinter_INIRoundTrip(t *testing.T) {
	inputs := []string{
		testutil.Scenario,
		repeated,
		string(testutil.GenerateINI(testutil.Profile{Keys: 20, KeysPerSection: 3, CommentEvery: 4, Seed: 9})),
	}
	opts := DefaultOptions()
	opts.Format = FormatINI
	opts.Effective = true

	for _, input := range inputs {
		first := parseDoc(t, input)
		second := parseDoc(t, render(t, first, opts))

		for _, e := range first.Entries() {
			v, ok := second.Lookup(e.Section, e.Key)
			require.True(t, ok, "%s.%s", e.Section, e.Key)
			want, _ := first.Lookup(e.Section, e.Key)
			assert.Equal(t, want, v)
		}
		assert.Equal(t, first.Sections(), second.Sections())
	}
}

func TestPrinter_FakeSource(t *testing.T) {
	src := fakeSource{entries: []ini.Entry{{Key: "k", Value: "v"}}}
	opts := DefaultOptions()
	opts.Format = FormatINI
	assert.Equal(t, "k=v\n", render(t, src, opts))
}

func TestPrinter_UnknownFormat(t *testing.T) {
	err := New(fakeSource{}, &bytes.Buffer{}, Options{Format: "toml"}).Print()
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

type fakeSource struct {
	entries  []ini.Entry
	sections []string
}

func (f fakeSource) Entries() []ini.Entry { return f.entries }
func (f fakeSource) Sections() []string   { return f.sections }
