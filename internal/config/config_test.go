package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp isolates the config search path from the developer's machine.
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := chdirTemp(t)

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, DefaultStatePath), settings.State.Path)
	assert.Equal(t, "info", settings.Log.Level)
	assert.Equal(t, "json", settings.Log.Format)
	assert.Equal(t, DefaultResponseTop, settings.Response.Top)
	assert.Equal(t, DefaultMaxLineBytes, settings.Input.MaxLineBytes)
}

func TestLoadConfigFileThenEnvOverride(t *testing.T) {
	dir := chdirTemp(t)

	content := `[state]
path = "data/state.toml"

[log]
level = "debug"
format = "console"

[response]
top = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "void-bridge.toml"), []byte(content), 0o600))
	t.Setenv("VOID_BRIDGE_RESPONSE_TOP", "9")

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "data", "state.toml"), settings.State.Path)
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "console", settings.Log.Format)
	assert.Equal(t, 9, settings.Response.Top)
}

func TestLoadExplicitValueWins(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("VOID_BRIDGE_STATE_PATH", filepath.Join(dir, "env.toml"))

	v := viper.New()
	v.Set(StatePathKey, filepath.Join(dir, "arg.toml"))

	settings, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "arg.toml"), settings.State.Path)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		env     map[string]string
		want    string
	}{
		{
			name: "explicit file missing",
			file: "missing.toml",
			want: "read config file",
		},
		{
			name:    "malformed file",
			file:    "bad.toml",
			content: "[state\npath = ",
			want:    "read config file",
		},
		{
			name: "bad log level",
			env:  map[string]string{"VOID_BRIDGE_LOG_LEVEL": "loud"},
			want: "log settings",
		},
		{
			name: "non-positive top",
			env:  map[string]string{"VOID_BRIDGE_RESPONSE_TOP": "0"},
			want: "response.top must be positive",
		},
		{
			name: "non-positive max line",
			env:  map[string]string{"VOID_BRIDGE_INPUT_MAX_LINE_BYTES": "-1"},
			want: "input.max_line_bytes must be positive",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := chdirTemp(t)
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			configFile := ""
			if tc.file != "" {
				configFile = filepath.Join(dir, tc.file)
				if tc.content != "" {
					require.NoError(t, os.WriteFile(configFile, []byte(tc.content), 0o600))
				}
			}

			_, err := Load(viper.New(), configFile)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}
