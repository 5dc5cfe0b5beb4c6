package job

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRedirectsDefaults(t *testing.T) {
	s, err := OpenRedirects(&Job{})
	require.NoError(t, err)
	defer s.Close()

	assert.Nil(t, s.In)
	assert.Nil(t, s.Out)
	assert.Nil(t, s.Err)
}

func TestOpenRedirectsMissingInput(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	s, err := OpenRedirects(&Job{Stdin: &Redirect{Path: missing}})

	assert.Nil(t, s)
	require.Error(t, err)
	assert.Equal(t, missing+": No such file or directory", err.Error())
}

func TestOpenRedirectsTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0644))

	s, err := OpenRedirects(&Job{Stdout: &Redirect{Path: path}})
	require.NoError(t, err)
	require.NotNil(t, s.Out)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestOpenRedirectsAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")
	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0644))

	s, err := OpenRedirects(&Job{Stderr: &Redirect{Path: path, Append: true}})
	require.NoError(t, err)
	require.NotNil(t, s.Err)

	_, err = s.Err.WriteString("second\n")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestOpenRedirectsUnopenableSink(t *testing.T) {
	dir := t.TempDir() // a directory cannot be opened for writing
	s, err := OpenRedirects(&Job{Stdout: &Redirect{Path: dir}})

	assert.Nil(t, s)
	require.Error(t, err)
	assert.Equal(t, "'"+dir+"' cannot be opened", err.Error())
}

func TestStdioCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.txt")
	s, err := OpenRedirects(&Job{Stdout: &Redirect{Path: path}})
	require.NoError(t, err)

	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}
