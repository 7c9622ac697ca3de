// Package scantest provides a conformance test suite for validating
// Scanner producers against the dirscan contract.
//
// This package contains test functions that can be imported and executed by
// scanner backends (the OS implementation, the billy adapter, or any
// third-party producer) to verify they honor the contract: full-set yield,
// empty directories, the open/read error taxonomy, and release-on-abandon
// semantics.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    scantest.TestScanner(t, func(t *testing.T) scantest.Backend {
//	        return newMyBackend(t)
//	    })
//	}
package scantest

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surelabs/dirscan"
)

// Backend is the surface a Scanner producer must expose to the suite. The
// fixture methods are used to lay out test directories; Scan is the
// operation under test. Paths handed to a Backend are relative to whatever
// root the backend chose (a temp dir, an in-memory filesystem root, ...).
type Backend interface {
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(path string, data []byte, perm os.FileMode) error
	Scan(path string) (dirscan.Scanner, error)
}

// TestScanner runs all backend-independent conformance tests. The
// newBackend function must return a fresh, empty backend for each call;
// tests create fixtures, so each invocation should start clean.
func TestScanner(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("YieldsAllEntryNames", func(t *testing.T) {
		testYieldsAllEntryNames(t, newBackend(t))
	})
	t.Run("EmptyDirectory", func(t *testing.T) {
		testEmptyDirectory(t, newBackend(t))
	})
	t.Run("MissingPath", func(t *testing.T) {
		testMissingPath(t, newBackend(t))
	})
	t.Run("NotADirectory", func(t *testing.T) {
		testNotADirectory(t, newBackend(t))
	})
	t.Run("AbandonAfterFirstEntry", func(t *testing.T) {
		testAbandonAfterFirstEntry(t, newBackend(t))
	})
	t.Run("CloseIsIdempotent", func(t *testing.T) {
		testCloseIsIdempotent(t, newBackend(t))
	})
	t.Run("ConcurrentScans", func(t *testing.T) {
		testConcurrentScans(t, newBackend(t))
	})
}

// populate creates a directory with three files and one subdirectory and
// returns the expected entry-name set.
func populate(t *testing.T, b Backend, dir string) []string {
	t.Helper()

	require.NoError(t, b.MkdirAll(dir, 0o755))
	for _, name := range []string{"a.txt", "b.txt", "c.txt"} {
		require.NoError(t, b.WriteFile(dir+"/"+name, []byte(name), 0o644))
	}
	require.NoError(t, b.MkdirAll(dir+"/sub", 0o755))

	return []string{"a.txt", "b.txt", "c.txt", "sub"}
}

// drain consumes a scanner to exhaustion and returns everything it yielded.
func drain(t *testing.T, s dirscan.Scanner) []string {
	t.Helper()

	var names []string
	for {
		name, ok := s.Next()
		if !ok {
			break
		}
		names = append(names, name)
	}

	return names
}

func testYieldsAllEntryNames(t *testing.T, b Backend) {
	want := populate(t, b, "data")

	s, err := b.Scan("data")
	require.NoError(t, err)

	got := drain(t, s)
	require.NoError(t, s.Err())
	assert.ElementsMatch(t, want, got)

	// Non-recursive: nothing from inside "sub" may appear.
	assert.NotContains(t, got, "sub/nested.txt")
}

func testEmptyDirectory(t *testing.T, b Backend) {
	require.NoError(t, b.MkdirAll("empty", 0o755))

	s, err := b.Scan("empty")
	require.NoError(t, err)

	got := drain(t, s)
	require.NoError(t, s.Err())
	assert.Empty(t, got)

	// Exhaustion is terminal: Next stays false without error.
	_, ok := s.Next()
	assert.False(t, ok)
	assert.NoError(t, s.Err())
}

func testMissingPath(t *testing.T, b Backend) {
	s, err := b.Scan("does-not-exist")
	require.Error(t, err)
	assert.Nil(t, s)

	var openErr *dirscan.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Contains(t, openErr.Path, "does-not-exist")
}

func testNotADirectory(t *testing.T, b Backend) {
	require.NoError(t, b.MkdirAll("d", 0o755))
	require.NoError(t, b.WriteFile("d/plain.txt", []byte("x"), 0o644))

	s, err := b.Scan("d/plain.txt")
	require.Error(t, err)
	assert.Nil(t, s)

	var openErr *dirscan.OpenError
	require.ErrorAs(t, err, &openErr)
}

func testAbandonAfterFirstEntry(t *testing.T, b Backend) {
	populate(t, b, "data")

	s, err := b.Scan("data")
	require.NoError(t, err)

	_, ok := s.Next()
	require.True(t, ok, "expected at least one entry")

	require.NoError(t, s.Close())
	assert.NoError(t, s.Err())

	// A closed scanner yields nothing further.
	_, ok = s.Next()
	assert.False(t, ok)
}

func testCloseIsIdempotent(t *testing.T, b Backend) {
	require.NoError(t, b.MkdirAll("empty", 0o755))

	s, err := b.Scan("empty")
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second Close must not re-release")

	// Close after natural exhaustion is also a no-op.
	s2, err := b.Scan("empty")
	require.NoError(t, err)
	drain(t, s2)
	require.NoError(t, s2.Close())
}

func testConcurrentScans(t *testing.T, b Backend) {
	want := populate(t, b, "data")

	const scanners = 2

	results := make([][]string, scanners)
	errs := make([]error, scanners)

	var wg sync.WaitGroup
	for i := 0; i < scanners; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()

			s, err := b.Scan("data")
			if err != nil {
				errs[i] = err

				return
			}

			var names []string
			for {
				name, ok := s.Next()
				if !ok {
					break
				}
				names = append(names, name)
			}
			results[i] = names
			errs[i] = s.Err()
		}()
	}
	wg.Wait()

	for i := 0; i < scanners; i++ {
		require.NoError(t, errs[i])
		assert.ElementsMatch(t, want, results[i])
	}
}
