package dirscan

// EachName scans the directory at path and invokes fn once per entry name,
// in platform order. Returning false from fn abandons the scan early.
//
// The underlying handle is released on every path out of EachName,
// including an early stop and a panic inside fn. A *OpenError is returned
// if the directory cannot be opened; a *ReadError if reading it fails
// mid-scan (names already passed to fn stay valid).
func EachName(path string, fn func(name string) bool) error {
	s, err := Scan(path)
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

// Names scans the directory at path and returns all entry names, in
// platform order.
//
// On a *ReadError the names read before the failure are returned alongside
// the error; on a *OpenError the returned slice is nil.
func Names(path string) ([]string, error) {
	var names []string

	err := EachName(path, func(name string) bool {
		names = append(names, name)

		return true
	})
	if err != nil {
		return names, err
	}

	return names, nil
}
