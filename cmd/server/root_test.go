package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	for _, sub := range []string{"serve", "migrate"} {
		assert.Contains(t, buf.String(), sub, "help missing %q command", sub)
	}
}

func TestRootCommand_ConfigFlag(t *testing.T) {
	configFile = ""

	cmd := NewRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config=/etc/taskr.yaml", "migrate", "--help"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "/etc/taskr.yaml", configFile)
}

func TestMigrateCommand_RejectsUnknownSubcommand(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"migrate", "sideways"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sideways")
}

func TestMigrateCommand_RejectsExtraArgs(t *testing.T) {
	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"migrate", "up", "down"})

	require.Error(t, cmd.Execute())
}
