package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "minipas.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "debug"

[repl]
mode = "tui"
prompt = "pas> "

[output]
scope_format = "yaml"
`), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "tui", cfg.REPL.Mode)
	assert.Equal(t, "pas> ", cfg.REPL.Prompt)
	assert.Equal(t, "yaml", cfg.Output.ScopeFormat)
	assert.Equal(t, "tree", cfg.Output.ASTFormat, "unset keys take defaults")
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nast_format = \"spew\"\n"), 0o644))
	t.Setenv(configEnv, path)

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "spew", cfg.Output.ASTFormat)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv(configEnv, "")
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "line", cfg.REPL.Mode)
	assert.Equal(t, "calc> ", cfg.REPL.Prompt)
	assert.Equal(t, "text", cfg.Output.ScopeFormat)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err, "an explicit path must exist")

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[repl]\nmode = \"gui\"\n"), 0o644))
	_, err = loadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
