package classify

import "fmt"

// OpenError indicates a directory could not be listed. The walk aborts:
// a partial audit must never pass for a complete one.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open directory %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// UnknownEntryError indicates the filesystem reported an entry whose
// type cannot be determined. Treated as an environment integrity
// problem, not something to guess about.
type UnknownEntryError struct {
	Path string
	Name string
}

func (e *UnknownEntryError) Error() string {
	return fmt.Sprintf("unknown entry type for %s/%s", e.Path, e.Name)
}

// EntryLimitError indicates a directory exceeded the configured
// per-directory entry cap. The walk aborts rather than truncating.
type EntryLimitError struct {
	Path  string
	Limit int
}

func (e *EntryLimitError) Error() string {
	return fmt.Sprintf("%s has more than %d entries", e.Path, e.Limit)
}
