package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const portsFile = `[server]
port=8080
[client]
port=9090
`

func TestGetCommand(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		section string
		scope   string
		want    string
		wantErr string
	}{
		{name: "global last write wins", key: "port", want: "9090"},
		{name: "lookup in section", key: "port", section: "server", want: "8080"},
		{name: "section scope key", key: "server.port", scope: "section", want: "8080"},
		{name: "section scope lookup", key: "port", section: "client", scope: "section", want: "9090"},
		{name: "missing key", key: "host", wantErr: `key "host" not found`},
		{name: "missing in section", key: "port", section: "db", wantErr: `not found in section "db"`},
		{name: "bad scope", key: "port", scope: "nested", wantErr: "unknown key scope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			getSection = tt.section
			if tt.scope != "" {
				scopeFlag = tt.scope
			}
			path := testFile(t, "ports.ini", portsFile)

			output, err := captureOutput(t, func() error {
				return runGet([]string{path, tt.key})
			})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(output))
		})
	}
}

func TestGetCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	getSection = "server"
	path := testFile(t, "ports.ini", portsFile)

	output, err := captureOutput(t, func() error {
		return runGet([]string{path, "port"})
	})
	require.NoError(t, err)
	assertJSON(t, output)
	assertContains(t, output, []string{`"value": "8080"`, `"section": "server"`})
}

func TestGetCommand_TableCapacityFlag(t *testing.T) {
	resetFlags()
	quiet = true
	tableCapacity = 2
	path := testFile(t, "ports.ini", "a=1\nb=2\n")

	_, err := captureOutput(t, func() error {
		return runGet([]string{path, "a"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TableOverflow")
}
