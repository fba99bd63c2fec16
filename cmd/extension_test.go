package cmd

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExtension(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	script := "#!/bin/sh\necho \"$1 $" + EnvConfigFile + " $" + EnvVerbose + "\" > " + out + "\nexit 3\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fin-hello"), []byte(script), 0755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	found, code := RunExtension("hello", []string{"world"})
	assert.True(t, found)
	assert.Equal(t, 3, code)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "world "+*configFile+" false", strings.TrimSpace(string(got)))
}

func TestRunExtension_NotFound(t *testing.T) {
	found, code := RunExtension("does-not-exist-anywhere", nil)
	assert.False(t, found)
	assert.Equal(t, 0, code)
}
