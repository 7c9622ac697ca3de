// Package billy adapts any go-billy filesystem to the dirscan Scanner
// contract, so directory scans can run against in-memory (memfs) or
// chrooted OS (osfs) backends without touching the host filesystem.
package billy

import (
	"fmt"
	"os"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/surelabs/dirscan"
)

// FS produces dirscan Scanners over a go-billy filesystem.
type FS struct {
	fs billy.Filesystem
}

// NewFS creates a new FS using the given go-billy filesystem.
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{
		fs: fsys,
	}
}

// NewInMemoryFS creates a new in-memory filesystem.
func NewInMemoryFS() *FS {
	return &FS{
		fs: memfs.New(),
	}
}

// NewOSFS creates a new OS filesystem rooted at path.
func NewOSFS(path string) *FS {
	return &FS{
		fs: osfs.New(path),
	}
}

// Scan lists the directory at path and returns a Scanner over its entry
// names. It follows the dirscan error taxonomy: a path that is missing or
// not a directory yields a *dirscan.OpenError, a listing failure a
// *dirscan.ReadError.
//
// billy's directory listing is materialized rather than streamed, which the
// Scanner contract permits; only entry names cross the boundary.
//
//nolint:ireturn // the Scanner contract is the package's public boundary.
func (b *FS) Scan(path string) (dirscan.Scanner, error) {
	info, err := b.fs.Stat(path)
	if err != nil {
		return nil, &dirscan.OpenError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &dirscan.OpenError{Path: path, Err: syscall.ENOTDIR}
	}

	entries, err := b.fs.ReadDir(path)
	if err != nil {
		return nil, &dirscan.ReadError{Path: path, Err: err}
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}

	return &listScanner{names: names}, nil
}

// EachName scans path and invokes fn once per entry name. Returning false
// from fn stops the scan early.
func (b *FS) EachName(path string, fn func(name string) bool) error {
	s, err := b.Scan(path)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	for {
		name, ok := s.Next()
		if !ok {
			return s.Err()
		}
		if !fn(name) {
			return s.Close()
		}
	}
}

// Names scans path and returns all entry names.
func (b *FS) Names(path string) ([]string, error) {
	var names []string

	err := b.EachName(path, func(name string) bool {
		names = append(names, name)

		return true
	})
	if err != nil {
		return names, err
	}

	return names, nil
}

// MkdirAll creates a directory and all necessary parents.
func (b *FS) MkdirAll(path string, perm os.FileMode) error {
	if err := b.fs.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", path, err)
	}
	return nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *FS) WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := util.WriteFile(b.fs, path, data, perm); err != nil {
		return fmt.Errorf("billy: writefile %q: %w", path, err)
	}
	return nil
}

// Raw returns the underlying go-billy filesystem.
//
//nolint:ireturn // returning the interface exposes the adapter target.
func (b *FS) Raw() billy.Filesystem {
	return b.fs
}

// listScanner serves a materialized name list through the Scanner contract.
// There is no platform handle to release, so Close only stops iteration.
type listScanner struct {
	names []string
	next  int
	done  bool
}

// Next advances to the next entry name.
func (s *listScanner) Next() (string, bool) {
	if s.done || s.next >= len(s.names) {
		s.done = true

		return "", false
	}

	name := s.names[s.next]
	s.next++

	return name, true
}

// Err always returns nil: listing failures surface from Scan itself.
func (s *listScanner) Err() error { return nil }

// Close stops iteration.
func (s *listScanner) Close() error {
	s.done = true

	return nil
}
