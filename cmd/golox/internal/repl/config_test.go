package repl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigAppliesWhenHomeHasNoRCFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg := loadConfig()
	assert.Equal(t, defaultConfig().Banner, cfg.Banner)
	assert.Equal(t, prompt, cfg.Prompt)
	require.NotNil(t, cfg.EchoResults)
	assert.True(t, *cfg.EchoResults)
}

func TestRCFileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	rc := "banner: \"custom banner\"\nprompt: \"lox> \"\necho_results: false\ncolor: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".goloxrc.yaml"), []byte(rc), 0o644))

	cfg := loadConfig()
	assert.Equal(t, "custom banner", cfg.Banner)
	assert.Equal(t, "lox> ", cfg.Prompt)
	require.NotNil(t, cfg.EchoResults)
	assert.False(t, *cfg.EchoResults)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
}

func TestMalformedRCFileFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, ".goloxrc.yaml"), []byte("not: [valid yaml"), 0o644))

	cfg := loadConfig()
	assert.Equal(t, defaultConfig().Banner, cfg.Banner)
}
