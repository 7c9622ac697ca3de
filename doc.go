// Package dirscan lists the entries of a single directory without exposing
// the platform's raw directory-entry representation.
//
// The package deliberately does one thing: open a directory, stream each
// entry's name back to the caller, and release the underlying handle on
// every exit path. It does not resolve paths, follow symlinks, recurse,
// stat entries, sort, or filter — callers layer those concerns on top.
//
// # Usage
//
// Pull-based iteration:
//
//	s, err := dirscan.Scan("/var/log")
//	if err != nil {
//	    // *dirscan.OpenError: the directory could not be opened
//	}
//	defer s.Close()
//	for {
//	    name, ok := s.Next()
//	    if !ok {
//	        break
//	    }
//	    fmt.Println(name)
//	}
//	if err := s.Err(); err != nil {
//	    // *dirscan.ReadError: reading the open directory failed
//	}
//
// Callback form:
//
//	err := dirscan.EachName("/var/log", func(name string) bool {
//	    fmt.Println(name)
//	    return true // false stops the scan early
//	})
//
// Or fully materialized:
//
//	names, err := dirscan.Names("/var/log")
//
// # Ordering
//
// Names are yielded in whatever order the platform's directory stream
// produces them. That order is platform-defined: it is not sorted, not
// stable across calls, and not reproducible across platforms. Callers that
// need a specific order must sort the result themselves.
//
// # Concurrent modification
//
// Each scan owns an independent handle, so concurrent scans of the same
// directory do not interfere with each other. The platform, however, does
// not guarantee a consistent snapshot when the directory is modified while
// a scan is in progress: entries created or removed mid-scan may be missed
// or seen twice. This is an inherent platform limitation, not a defect of
// the caller or of this package.
//
// # Errors
//
// Failures are reported through exactly two types. [OpenError] means the
// directory could not be opened (missing path, not a directory, permission
// denied, descriptor exhaustion); no handle is left held. [ReadError] means
// reading an already-open directory failed; the handle is released before
// the error is surfaced, and names delivered before the failure remain
// valid. Both unwrap to the platform cause, so errors.Is against
// fs.ErrNotExist, fs.ErrPermission, or syscall.ENOTDIR works as expected.
// Neither kind is retried internally; only the caller knows whether the
// condition is transient.
//
// # Pseudo-entries
//
// Following Go platform convention, the "." and ".." pseudo-entries are
// never reported.
package dirscan
