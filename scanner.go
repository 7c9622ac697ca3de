package dirscan

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// readBatchSize is how many names are pulled from the directory stream per
// underlying read. Batching keeps syscall counts low while the Scanner
// itself stays lazy with respect to the stream.
const readBatchSize = 256

// Scanner is a pull iterator over the entry names of a single directory.
//
// A Scanner is a finite, non-restartable sequence: once exhausted, a fresh
// Scan is required to rescan. It is not safe for concurrent use; open one
// Scanner per goroutine instead.
type Scanner interface {
	// Next advances to the next entry and returns its name.
	// It returns ("", false) when the sequence is over, whether by
	// exhaustion, read failure, or Close. Check Err after Next returns
	// false to distinguish end-of-directory from a read failure.
	Next() (string, bool)

	// Err returns the error that terminated iteration, or nil if the
	// directory was read to the end (or the Scanner was closed early).
	Err() error

	// Close releases the underlying directory handle. It is safe to call
	// Close at any point, including after exhaustion (a no-op) and more
	// than once (subsequent calls return nil without re-releasing).
	Close() error
}

// Scan opens the directory at path and returns a Scanner over its entry
// names.
//
// If the directory cannot be opened — the path does not exist, names a
// regular file, or access is denied — Scan returns a *OpenError and no
// handle is left held. Otherwise the returned Scanner owns the handle and
// guarantees its release when iteration ends, fails, or is abandoned via
// Close.
//
//nolint:ireturn // the Scanner contract is the package's public boundary.
func Scan(path string) (Scanner, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	// Readdirnames on a non-directory would only fail at read time; the
	// contract requires not-a-directory to surface as an open failure.
	info, err := dir.Stat()
	if err != nil {
		_ = dir.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if !info.IsDir() {
		_ = dir.Close()
		return nil, &OpenError{Path: path, Err: syscall.ENOTDIR}
	}

	return &osScanner{path: path, dir: dir}, nil
}

// osScanner implements Scanner over an open *os.File directory handle,
// reading names in batches via Readdirnames.
type osScanner struct {
	path string
	dir  *os.File

	batch []string
	next  int

	// readErr is a pending read failure; names read before the failure are
	// drained from batch first, then the error becomes terminal.
	readErr *ReadError
	eof     bool

	// done marks the handle as released. It is set exactly once; all
	// terminal paths funnel through finish or Close.
	done bool
	err  error
}

// Next advances to the next entry name.
func (s *osScanner) Next() (string, bool) {
	for !s.done {
		if s.next < len(s.batch) {
			name := s.batch[s.next]
			s.next++

			return name, true
		}

		if s.eof || s.readErr != nil {
			s.finish()

			return "", false
		}

		names, err := s.dir.Readdirnames(readBatchSize)
		s.batch, s.next = names, 0

		switch {
		case err == nil:
		case errors.Is(err, io.EOF):
			s.eof = true
		default:
			// Readdirnames may return names alongside the error; deliver
			// them before surfacing the failure.
			s.readErr = &ReadError{Path: s.path, Err: err}
		}
	}

	return "", false
}

// Err returns the error that terminated iteration, if any.
func (s *osScanner) Err() error {
	return s.err
}

// Close releases the handle if iteration has not already done so.
func (s *osScanner) Close() error {
	if s.done {
		return nil
	}
	s.done = true

	if err := s.dir.Close(); err != nil {
		return &ReadError{Path: s.path, Err: err}
	}

	return nil
}

// finish records the terminal error and releases the handle. Callers must
// ensure finish runs at most once; done guards re-entry from Next.
func (s *osScanner) finish() {
	s.done = true

	if s.readErr != nil {
		s.err = s.readErr
	}

	if cerr := s.dir.Close(); cerr != nil && s.err == nil {
		s.err = &ReadError{Path: s.path, Err: cerr}
	}
}
