package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd verifies the root command shape.
func TestRootCmd(t *testing.T) {
	assert.Equal(t, "exocat", rootCmd.Use)

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "assemble")
	assert.Contains(t, names, "export")
	assert.Contains(t, names, "lookup")
}

// TestRootCmd_HelpText verifies help text content.
func TestRootCmd_HelpText(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	// Reset the help flag so its state does not leak into later tests
	// that reuse the shared rootCmd.
	require.NoError(t, rootCmd.Flags().Set("help", "false"))

	helpText := buf.String()
	assert.Contains(t, helpText, "exocat")
	assert.Contains(t, helpText, "catalog")
	assert.Contains(t, helpText, "EXOCAT_")
}

// TestRootCmd_VersionFlag verifies -V output.
func TestRootCmd_VersionFlag(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"-V"})

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "version:")
	assert.Contains(t, output, "build:")
}

// TestAssembleCmd_Flags verifies assemble flag registration.
func TestAssembleCmd_Flags(t *testing.T) {
	cmd := getAssembleCmd()
	assert.NotNil(t, cmd.Flags().Lookup("ra-precision"))
	assert.NotNil(t, cmd.Flags().Lookup("dec-precision"))
	assert.NotNil(t, cmd.Flags().Lookup("jobs"))
	assert.Contains(t, cmd.Aliases, "build")
}

// TestExportCmd_Flags verifies export flag registration.
func TestExportCmd_Flags(t *testing.T) {
	cmd := getExportCmd()
	assert.NotNil(t, cmd.Flags().Lookup("batch-size"))
}

// TestLookupCmd_Args verifies lookup requires exactly one argument.
func TestLookupCmd_Args(t *testing.T) {
	cmd := getLookupCmd()
	require.NotNil(t, cmd.Args)
	err := cmd.Args(cmd, []string{})
	assert.Error(t, err)
	err = cmd.Args(cmd, []string{"WASP-69 b"})
	assert.NoError(t, err)
}
