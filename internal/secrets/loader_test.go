package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFileTakesPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(path, []byte("  file-secret \n"), 0o600))

	secret, err := Load(Source{Name: "api key", File: path, Value: "inline"})
	require.NoError(t, err)
	assert.Equal(t, "file-secret", secret)
}

func TestLoadFromValueAndEnv(t *testing.T) {
	secret, err := Load(Source{Value: " inline "})
	require.NoError(t, err)
	assert.Equal(t, "inline", secret)

	t.Setenv("JH_TEST_SECRET", "from-env")
	secret, err = Load(Source{Env: "JH_TEST_SECRET"})
	require.NoError(t, err)
	assert.Equal(t, "from-env", secret)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(Source{Name: "gemini api key"})
	assert.ErrorContains(t, err, "gemini api key is not configured")

	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))
	_, err = Load(Source{File: path})
	assert.ErrorContains(t, err, "is empty")

	_, err = Load(Source{File: filepath.Join(t.TempDir(), "missing")})
	assert.Error(t, err)
}
