package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Default(t *testing.T) {
	assert := assert.New(t)

	cfg, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(err)
	assert.Equal(DefaultConfig(), cfg)

	cfg, err = NewConfig("")
	assert.NoError(err)
	assert.Equal(41, cfg.Format.Width)
	assert.False(cfg.Verbose)
}

func TestNewConfig_File(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "toy.yaml")
	err := os.WriteFile(path, []byte(`
verbose: true
locale: fr-FR
run:
  input: "0001 0002"
  dump: true
`), 0o644)
	assert.NoError(err)

	cfg, err := NewConfig(path)
	assert.NoError(err)
	assert.True(cfg.Verbose)
	assert.Equal("fr-FR", cfg.Locale)
	assert.Equal("0001 0002", cfg.Run.Input)
	assert.Equal("", cfg.Run.Watch)
	assert.True(cfg.Run.Dump)
	assert.Equal(41, cfg.Format.Width)
}

func TestNewConfig_Env(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "toy.yaml")
	err := os.WriteFile(path, []byte("format:\n  width: 50\n"), 0o644)
	assert.NoError(err)

	t.Setenv("TOY_FORMAT_WIDTH", "60")
	t.Setenv("TOY_RUN_WATCH", "pc == 0x20")

	cfg, err := NewConfig(path)
	assert.NoError(err)
	assert.Equal(60, cfg.Format.Width)
	assert.Equal("pc == 0x20", cfg.Run.Watch)
}

func TestNewConfig_Error(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	_, err := NewConfig(dir)
	assert.ErrorIs(err, ErrIsDirectory)

	path := filepath.Join(dir, "bad.yaml")
	err = os.WriteFile(path, []byte("run: [unterminated\n"), 0o644)
	assert.NoError(err)

	_, err = NewConfig(path)
	var cerr *ErrConfigFile
	assert.True(errors.As(err, &cerr))
	assert.Equal(path, cerr.Path)
}
