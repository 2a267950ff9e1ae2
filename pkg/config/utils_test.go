package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEnvTest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env.accounts-test"), []byte("X=1\n"), 0o600))
	t.Chdir(nested)

	found, err := FindEnvTest(".env.accounts-test")
	require.NoError(t, err)
	b, err := os.ReadFile(found)
	require.NoError(t, err)
	assert.Equal(t, "X=1\n", string(b))

	_, err = FindEnvTest(".env.does-not-exist")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
