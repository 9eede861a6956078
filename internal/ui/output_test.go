package ui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPrefixes(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	u := NewWithWriter(&buf)

	u.Infof("Target root: %s", "/")
	u.Successf("Installed %s", "a.cfg")
	u.Warning("EFI requested but boot/efi/EFI is missing")
	u.Errorf("failed: %v", "boom")
	u.Print("plain")

	assert.Equal(t, "[INFO] Target root: /\n"+
		"[✓] Installed a.cfg\n"+
		"[WARNING] EFI requested but boot/efi/EFI is missing\n"+
		"[ERROR] failed: boom\n"+
		"plain\n", buf.String())
}

func TestPromptYesNoNonInteractive(t *testing.T) {
	u := NewWithWriter(&bytes.Buffer{})
	u.SetNonInteractive(true)
	require.True(t, u.IsNonInteractive())

	ok, err := u.PromptYesNo("Install?", true)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = u.PromptYesNo("Install?", false)
	require.NoError(t, err)
	assert.False(t, ok)
}
