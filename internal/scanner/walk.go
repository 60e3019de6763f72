package scanner

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/linecount/internal/counter"
	"github.com/blackwell-systems/linecount/internal/lang"
)

// task is one file selected by the walk, waiting to be classified.
type task struct {
	absPath string
	relPath string
	rule    lang.Rule
}

// outcome is the per-task result slot filled by a worker.
type outcome struct {
	stat *counter.FileStat
	skip *Skip
}

// Scan walks cfg.Root, classifies every file that passes the filters, and
// returns the collected stats plus the skip list. A file that cannot be
// read is recorded as a skip and never aborts the scan; only an invalid
// root is fatal.
func Scan(cfg Config) (*Result, error) {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolving root path: %w", err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %s is not a directory", root)
	}

	result := &Result{Root: root}

	var tasks []task
	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			// An unreadable directory under the root is a skip, not a
			// fatal error. The root itself was already stat'ed above.
			result.Skipped = append(result.Skipped, Skip{
				Path:   displayPath(root, path),
				Reason: err.Error(),
			})
			return nil
		}

		if entry.IsDir() {
			if path != root && cfg.ExcludeDirs[entry.Name()] {
				return fs.SkipDir
			}
			return nil
		}

		// WalkDir does not follow symlinks, so a symlinked directory never
		// causes a cycle. A symlink to a regular file is still counted.
		if entry.Type()&fs.ModeSymlink != 0 {
			target, statErr := os.Stat(path)
			if statErr != nil || !target.Mode().IsRegular() {
				return nil
			}
		} else if !entry.Type().IsRegular() {
			return nil
		}

		rule, ok := ruleFor(cfg, entry.Name())
		if !ok {
			return nil
		}

		tasks = append(tasks, task{
			absPath: path,
			relPath: displayPath(root, path),
			rule:    rule,
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking %s: %w", root, walkErr)
	}

	outcomes := classifyAll(tasks, cfg.Jobs)

	for _, o := range outcomes {
		if o.stat != nil {
			result.Files = append(result.Files, *o.stat)
		}
		if o.skip != nil {
			result.Skipped = append(result.Skipped, *o.skip)
		}
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})
	sort.Slice(result.Skipped, func(i, j int) bool {
		return result.Skipped[i].Path < result.Skipped[j].Path
	})

	return result, nil
}

// ruleFor applies the extension filters and resolves the comment rule for
// a file name. ok=false means the file is excluded by policy.
func ruleFor(cfg Config, name string) (lang.Rule, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		return lang.Rule{}, false
	}

	if len(cfg.IncludeExts) > 0 {
		if !cfg.IncludeExts[ext] {
			return lang.Rule{}, false
		}
		if rule, ok := lang.Lookup(ext); ok {
			return rule, true
		}
		return lang.PlainText(ext), true
	}

	if rule, ok := lang.Lookup(ext); ok {
		return rule, true
	}
	if cfg.CountUnknown {
		return lang.PlainText(ext), true
	}
	return lang.Rule{}, false
}

// classifyAll runs the classifier over the tasks with bounded parallelism.
// Each worker writes only its own slot, so no locking is needed; ordering
// is restored by the caller's sort.
func classifyAll(tasks []task, jobs int) []outcome {
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	outcomes := make([]outcome, len(tasks))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i := range tasks {
		i := i
		g.Go(func() error {
			outcomes[i] = classifyFile(tasks[i])
			return nil
		})
	}
	// Workers report failures as skips, never as errors.
	_ = g.Wait()

	return outcomes
}

// sniffLen is how many leading bytes are inspected for the NUL byte that
// marks a file as binary.
const sniffLen = 8000

func classifyFile(t task) outcome {
	file, err := os.Open(t.absPath)
	if err != nil {
		return outcome{skip: &Skip{Path: t.relPath, Reason: err.Error()}}
	}
	defer file.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return outcome{skip: &Skip{Path: t.relPath, Reason: err.Error()}}
	}
	head = head[:n]

	if bytes.IndexByte(head, 0) != -1 {
		return outcome{skip: &Skip{Path: t.relPath, Reason: "binary file"}}
	}

	stat, err := counter.ClassifyReader(io.MultiReader(bytes.NewReader(head), file), t.rule)
	if err != nil {
		return outcome{skip: &Skip{Path: t.relPath, Reason: err.Error()}}
	}

	stat.Path = t.relPath
	stat.Extension = t.rule.Extension
	return outcome{stat: &stat}
}

// displayPath renders a path relative to the scan root with forward
// slashes, falling back to the absolute path.
func displayPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
