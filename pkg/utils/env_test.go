package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIGHTLOCK_TEST_FROM_FILE=yes\nLIGHTLOCK_TEST_PRESET=file\n"), 0o600))

	t.Setenv("LIGHTLOCK_TEST_PRESET", "env")
	t.Setenv("LIGHTLOCK_TEST_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("LIGHTLOCK_TEST_FROM_FILE"))

	LoadEnv(path, filepath.Join(dir, "missing.env"))

	assert.Equal(t, "yes", os.Getenv("LIGHTLOCK_TEST_FROM_FILE"))
	assert.Equal(t, "env", os.Getenv("LIGHTLOCK_TEST_PRESET"))
}
