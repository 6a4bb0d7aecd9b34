package bootstrap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"checkers/internal/checkers"
)

func TestSetupDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Setup("")
	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "checkers.log", cfg.LogFile)
	require.Equal(t, "1", cfg.View)
	require.True(t, cfg.Color)
	require.Equal(t, checkers.DefaultRepetitionLimit, cfg.RepetitionLimit)

	pos, err := cfg.Position()
	require.NoError(t, err)
	require.Nil(t, pos)
}

func TestSetupFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := filepath.Join(dir, "checkers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"log_level: debug\nview: notation\ncolor: false\nstart_position: \"8/8/8/8/3b4/2r5/8/8 r\"\n"), 0o600))
	t.Setenv("CHECKERS_REPETITION_LIMIT", "5")

	cfg, err := Setup(path)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "notation", cfg.View)
	require.False(t, cfg.Color)
	require.Equal(t, 5, cfg.RepetitionLimit)

	pos, err := cfg.Position()
	require.NoError(t, err)
	require.Equal(t, checkers.Red, pos.SideToMove)
}

func TestSetupReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CHECKERS_LOG_FILE=game.log\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CHECKERS_LOG_FILE") })

	cfg, err := Setup("")
	require.NoError(t, err)
	require.Equal(t, "game.log", cfg.LogFile)
}

func TestSetupMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	_, err := Setup("does-not-exist.yaml")
	require.Error(t, err)
}

func TestBadStartPosition(t *testing.T) {
	cfg := &Config{StartPosition: "nonsense"}
	_, err := cfg.Position()
	require.ErrorIs(t, err, checkers.ErrInvalidFEN)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger("warn", filepath.Join(t.TempDir(), "x.log"))
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = NewLogger("loud", "")
	require.Error(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
