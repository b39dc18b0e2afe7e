package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := NewRootCommand()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"convert", "types", "check", "record", "verify"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCommandRejectsUnknownFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "types"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--locale", "fr", "convert", "float64", `"-Infinity"`})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\"-∞\"\n", buf.String())
}

func TestRootCommandSymbolsFile(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--symbols", "../harness/testdata/symbols/nan_override.cue", "convert", "float64", `"NaN"`})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "\"n/a\"\n", buf.String())
}

func TestRootCommandMissingSymbolsFile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--symbols", "/nonexistent.cue", "types"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRootLoggerLevel(t *testing.T) {
	buf := &bytes.Buffer{}
	quiet := (&RootOptions{}).logger(buf)
	quiet.Info("hidden")
	assert.Empty(t, buf.String())

	loud := (&RootOptions{Verbose: true}).logger(buf)
	loud.Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}
