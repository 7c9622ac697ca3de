package dirscan

import "fmt"

// OpenError reports that a directory could not be opened for scanning.
// It wraps the platform cause, so errors.Is(err, fs.ErrNotExist) and
// errors.Is(err, syscall.ENOTDIR) work through it.
type OpenError struct {
	// Path is the directory path that failed to open.
	Path string

	// Err is the underlying platform error.
	Err error
}

// Error implements the error interface.
func (e *OpenError) Error() string {
	return fmt.Sprintf("dirscan: open %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying platform error.
func (e *OpenError) Unwrap() error { return e.Err }

// ReadError reports a failure while reading entries from an already-open
// directory. The handle is always released before a ReadError is surfaced;
// entry names delivered before the failure remain valid.
type ReadError struct {
	// Path is the directory path being scanned when the read failed.
	Path string

	// Err is the underlying platform error.
	Err error
}

// Error implements the error interface.
func (e *ReadError) Error() string {
	return fmt.Sprintf("dirscan: read %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying platform error.
func (e *ReadError) Unwrap() error { return e.Err }
