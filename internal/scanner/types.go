// Package scanner walks a directory tree and produces per-file line counts.
package scanner

import "github.com/blackwell-systems/linecount/internal/counter"

// Config holds the parameters for one scan. It is immutable for the
// duration of the scan.
type Config struct {
	// Root is the directory to scan. It must exist and be a directory.
	Root string

	// IncludeExts restricts the scan to the given lowercase extensions
	// (leading dot included). When non-empty it replaces the default
	// "recognized extension" filter: included files with an extension the
	// rule table does not know are counted as plain text.
	IncludeExts map[string]bool

	// ExcludeDirs are directory base names whose subtrees are pruned,
	// matched exactly against the directory name at any depth.
	ExcludeDirs map[string]bool

	// CountUnknown counts files with unrecognized extensions as plain text
	// instead of skipping them. Only consulted when IncludeExts is empty.
	CountUnknown bool

	// Jobs bounds how many files are classified concurrently. Values < 1
	// mean one worker per CPU. Classification is read-only per file, so
	// parallelism never changes the results.
	Jobs int
}

// Skip records a file that was excluded from statistics because it could
// not be read, not because of filter policy.
type Skip struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Result is the outcome of one scan.
type Result struct {
	// Root is the absolute path that was scanned.
	Root string `json:"root"`

	// Files holds per-file counts, sorted by path.
	Files []counter.FileStat `json:"files"`

	// Skipped lists files that failed to read, sorted by path.
	Skipped []Skip `json:"skipped"`
}
