package main

import (
	"bytes"
	"testing"

	"firearm-inventory/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, config.AppName+" "+config.AppVersion+"\n", out.String())
}

func TestInvalidLogLevelFailsBeforeWindow(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--log-level", "shout"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		cfg = config.Default()
	})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "invalid log level")
}
