package billy

import (
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surelabs/dirscan"
	"github.com/surelabs/dirscan/scantest"
)

// The adapter must satisfy the shared contract on both backends.

func TestInMemoryFS_Conformance(t *testing.T) {
	scantest.TestScanner(t, func(_ *testing.T) scantest.Backend {
		return NewInMemoryFS()
	})
}

func TestOSFS_Conformance(t *testing.T) {
	scantest.TestScanner(t, func(t *testing.T) scantest.Backend {
		return NewOSFS(t.TempDir())
	})
}

func TestNewFS_WrapsProvidedFilesystem(t *testing.T) {
	mem := memfs.New()
	fsys := NewFS(mem)

	require.NoError(t, fsys.MkdirAll("d", 0o755))
	require.NoError(t, fsys.WriteFile("d/f.txt", []byte("f"), 0o644))

	names, err := fsys.Names("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"f.txt"}, names)

	// Raw exposes the adapter target unchanged.
	assert.Equal(t, mem, fsys.Raw())
}

func TestScan_NotADirectory(t *testing.T) {
	fsys := NewInMemoryFS()
	require.NoError(t, fsys.WriteFile("plain.txt", []byte("x"), 0o644))

	s, err := fsys.Scan("plain.txt")
	require.Error(t, err)
	assert.Nil(t, s)

	var openErr *dirscan.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.True(t, errors.Is(err, syscall.ENOTDIR))
}

func TestScan_MissingPath(t *testing.T) {
	fsys := NewInMemoryFS()

	s, err := fsys.Scan("nope")
	require.Error(t, err)
	assert.Nil(t, s)

	var openErr *dirscan.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEachName_EarlyStop(t *testing.T) {
	fsys := NewInMemoryFS()
	require.NoError(t, fsys.MkdirAll("d", 0o755))
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, fsys.WriteFile("d/"+name, []byte(name), 0o644))
	}

	var seen int
	err := fsys.EachName("d", func(string) bool {
		seen++

		return false
	})
	require.NoError(t, err)
	assert.Equal(t, 1, seen)
}
