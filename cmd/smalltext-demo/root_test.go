package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, logs go to a temp state dir
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPrintDefault(t *testing.T) {
	out, err := execute(t, "--print", "--color", "none")
	require.NoError(t, err)
	assert.Equal(t, "smalltext\n", out)
}

func TestPrintWidthAndAnimation(t *testing.T) {
	out, err := execute(t, "--print", "--color", "none", "--width", "5", "--animation", "flash")
	require.NoError(t, err)
	assert.Equal(t, "small\n", out)
}

func TestPrintTrueColor(t *testing.T) {
	out, err := execute(t, "--print", "--color", "truecolor")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestPrintConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hi.yaml")
	require.NoError(t, os.WriteFile(path, []byte("text: hi there\nstyle:\n  - target: every:2\n    attrs: [bold]\n"), 0o644))

	out, err := execute(t, "--print", "--color", "none", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "hi there\n", out)
}

func TestRootErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown animation", []string{"--print", "--animation", "nope"}, "unknown animation"},
		{"unknown color", []string{"--print", "--color", "sepia"}, "unknown color mode"},
		{"missing config", []string{"--print", "--config", "/nonexistent/w.toml"}, "failed to read config"},
		{"bad extension", []string{"--print", "--config", "w.json"}, "unknown config format"},
		{"positional arg", []string{"--print", "extra"}, "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultConfigParses(t *testing.T) {
	style, err := loadStyle("")
	require.NoError(t, err)
	assert.Equal(t, "smalltext", style.Text)
	assert.Len(t, style.Animations, 3)
	assert.Contains(t, style.Animations, "pulse")
	assert.Contains(t, style.Animations, "flash")
	assert.Contains(t, style.Animations, "walk")
}

func TestColorProfile(t *testing.T) {
	tests := []struct {
		name string
		want termenv.Profile
	}{
		{"none", termenv.Ascii},
		{"ANSI", termenv.ANSI},
		{"256", termenv.ANSI256},
		{"24bit", termenv.TrueColor},
	}
	for _, tt := range tests {
		got, err := colorProfile(tt.name, &bytes.Buffer{})
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	// A buffer is not a terminal
	t.Setenv("CLICOLOR_FORCE", "")
	got, err := colorProfile("auto", &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, termenv.Ascii, got)
}
