package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amp-labs/amp-sorted/hashing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) { //nolint:paralleltest
	cmd := newRootCommand()

	var stdout, stderr bytes.Buffer

	cmd.SetIn(strings.NewReader("file10\nfile2\nfile1\nfile2\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--strategy", "natural", "--unique", "--checksum", "sha256", "--log-json"})

	require.NoError(t, cmd.ExecuteContext(t.Context()))

	assert.Equal(t, "file1\nfile2\nfile10\n", stdout.String())

	checksum, err := hashing.Sum(hashing.SHA256, hashing.HashableString(stdout.String()))
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), checksum+"  -")
	assert.Contains(t, stderr.String(), `"msg":"merge complete"`)
	assert.Regexp(t, `"run":"[0-9a-f-]{36}"`, stderr.String())
}

func TestRootCommand_Summary(t *testing.T) { //nolint:paralleltest
	cmd := newRootCommand()

	var stdout, stderr bytes.Buffer

	cmd.SetIn(strings.NewReader("b\na\nc\n"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--summary", "--checksum", "xxh3", "--log-level", "error"})

	require.NoError(t, cmd.ExecuteContext(t.Context()))

	assert.Equal(t, "a\nb\nc\n", stdout.String())
	assert.Contains(t, stderr.String(), "╒")
	assert.Contains(t, stderr.String(), "│lines: 3 (dropped 0)")
	assert.Contains(t, stderr.String(), "│checksum: ")
	assert.NotContains(t, stderr.String(), "merge complete")
}

func TestRootCommand_Errors(t *testing.T) { //nolint:paralleltest
	cmd := newRootCommand()

	var stderr bytes.Buffer

	cmd.SetIn(strings.NewReader("a\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--log-level", "chatty"})

	require.Error(t, cmd.ExecuteContext(t.Context()))
	assert.Contains(t, stderr.String(), "invalid log level")
}
