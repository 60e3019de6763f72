package scanner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeFixtureFile writes a file under the temp tree, creating parents.
func writeFixtureFile(t *testing.T, path string, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture file: %v", err)
	}
}

func scanTree(t *testing.T, cfg Config) *Result {
	t.Helper()

	result, err := Scan(cfg)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return result
}

func TestScan_BasicTree(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "main.go"), "package main\n\n// comment\nfunc main() {}\n")
	writeFixtureFile(t, filepath.Join(root, "sub", "util.py"), "# helper\nx = 1\n")

	result := scanTree(t, Config{Root: root})

	if len(result.Files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(result.Files), result.Files)
	}
	if len(result.Skipped) != 0 {
		t.Fatalf("expected no skips, got %+v", result.Skipped)
	}

	// Sorted by path.
	if result.Files[0].Path != "main.go" || result.Files[1].Path != "sub/util.py" {
		t.Errorf("unexpected paths: %q, %q", result.Files[0].Path, result.Files[1].Path)
	}

	goStat := result.Files[0]
	if goStat.Extension != ".go" || goStat.Total != 4 || goStat.Code != 2 || goStat.Comment != 1 || goStat.Blank != 1 {
		t.Errorf("unexpected go stat: %+v", goStat)
	}
}

func TestScan_ExcludedDirPrunedAtAnyDepth(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "keep.go"), "package keep\n")
	writeFixtureFile(t, filepath.Join(root, "vendor", "a.go"), "package a\n")
	writeFixtureFile(t, filepath.Join(root, "deep", "nested", "vendor", "b.go"), "package b\n")

	result := scanTree(t, Config{
		Root:        root,
		ExcludeDirs: map[string]bool{"vendor": true},
	})

	if len(result.Files) != 1 || result.Files[0].Path != "keep.go" {
		t.Fatalf("expected only keep.go, got %+v", result.Files)
	}
}

func TestScan_OnlyExcludedContent(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "skipme", "a.go"), "package a\n")

	result := scanTree(t, Config{
		Root:        root,
		ExcludeDirs: map[string]bool{"skipme": true},
	})

	if len(result.Files) != 0 {
		t.Fatalf("expected no files, got %+v", result.Files)
	}
}

func TestScan_IncludeFilterRestricts(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "a.py"), "x = 1\n")
	writeFixtureFile(t, filepath.Join(root, "b.go"), "package b\n")

	result := scanTree(t, Config{
		Root:        root,
		IncludeExts: map[string]bool{".py": true},
	})

	if len(result.Files) != 1 || result.Files[0].Extension != ".py" {
		t.Fatalf("expected only .py, got %+v", result.Files)
	}
}

func TestScan_IncludeFilterCountsUnknownAsPlainText(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "notes.qqq"), "# not a comment here\ntext\n")

	result := scanTree(t, Config{
		Root:        root,
		IncludeExts: map[string]bool{".qqq": true},
	})

	if len(result.Files) != 1 {
		t.Fatalf("expected 1 file, got %+v", result.Files)
	}
	stat := result.Files[0]
	if stat.Code != 2 || stat.Comment != 0 {
		t.Errorf("plain text should have no comments: %+v", stat)
	}
}

func TestScan_UnknownExtensionSkippedByDefault(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "data.qqq"), "whatever\n")
	writeFixtureFile(t, filepath.Join(root, "noext"), "whatever\n")

	result := scanTree(t, Config{Root: root})

	if len(result.Files) != 0 {
		t.Fatalf("expected no files, got %+v", result.Files)
	}
	// Filter policy exclusions are not read failures.
	if len(result.Skipped) != 0 {
		t.Fatalf("expected no skips, got %+v", result.Skipped)
	}
}

func TestScan_CountUnknownOptIn(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "data.qqq"), "one\n\ntwo\n")

	result := scanTree(t, Config{Root: root, CountUnknown: true})

	if len(result.Files) != 1 {
		t.Fatalf("expected 1 file, got %+v", result.Files)
	}
	if stat := result.Files[0]; stat.Total != 3 || stat.Code != 2 || stat.Blank != 1 {
		t.Errorf("unexpected stat: %+v", stat)
	}
}

func TestScan_BinaryFileSkipped(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "ok.go"), "package ok\n")
	writeFixtureFile(t, filepath.Join(root, "bad.go"), "package bad\x00binary\n")

	result := scanTree(t, Config{Root: root})

	if len(result.Files) != 1 || result.Files[0].Path != "ok.go" {
		t.Fatalf("expected only ok.go, got %+v", result.Files)
	}
	if len(result.Skipped) != 1 || result.Skipped[0].Path != "bad.go" {
		t.Fatalf("expected bad.go skipped, got %+v", result.Skipped)
	}
}

func TestScan_SkipNeverCorruptsAggregate(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "a.go"), "package a\n")
	writeFixtureFile(t, filepath.Join(root, "b.go"), "package b\n")
	writeFixtureFile(t, filepath.Join(root, "c.go"), "package c\n")
	writeFixtureFile(t, filepath.Join(root, "broken.go"), "\x00")

	result := scanTree(t, Config{Root: root})

	if len(result.Skipped) != 1 {
		t.Fatalf("expected skip tally 1, got %+v", result.Skipped)
	}
	if len(result.Files) != 3 {
		t.Fatalf("expected 3 counted files, got %d", len(result.Files))
	}
	for _, f := range result.Files {
		if f.Total != 1 || f.Code != 1 {
			t.Errorf("unexpected stat for %s: %+v", f.Path, f)
		}
	}
}

func TestScan_MissingRootIsFatal(t *testing.T) {
	_, err := Scan(Config{Root: filepath.Join(t.TempDir(), "nope")})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestScan_FileRootIsFatal(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f.go")
	writeFixtureFile(t, file, "package f\n")

	_, err := Scan(Config{Root: file})
	if err == nil || !strings.Contains(err.Error(), "not a directory") {
		t.Fatalf("expected not-a-directory error, got %v", err)
	}
}

func TestScan_SymlinkedDirNotFollowed(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	outside := t.TempDir()
	writeFixtureFile(t, filepath.Join(outside, "out.go"), "package out\n")

	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "in.go"), "package in\n")
	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	result := scanTree(t, Config{Root: root})

	if len(result.Files) != 1 || result.Files[0].Path != "in.go" {
		t.Fatalf("symlinked dir should not be descended: %+v", result.Files)
	}
}

func TestScan_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "a.go"), "package a\n\n// note\n")
	writeFixtureFile(t, filepath.Join(root, "b.py"), "# note\nx = 1\n")

	first := scanTree(t, Config{Root: root, Jobs: 4})
	second := scanTree(t, Config{Root: root, Jobs: 1})

	if len(first.Files) != len(second.Files) {
		t.Fatalf("file counts differ: %d vs %d", len(first.Files), len(second.Files))
	}
	for i := range first.Files {
		if first.Files[i] != second.Files[i] {
			t.Errorf("stat %d differs: %+v vs %+v", i, first.Files[i], second.Files[i])
		}
	}
}

func TestScan_SumInvariantHolds(t *testing.T) {
	root := t.TempDir()
	writeFixtureFile(t, filepath.Join(root, "a.c"), "/* hi\n*/\nint x;\n\n")
	writeFixtureFile(t, filepath.Join(root, "b.sh"), "#!/bin/sh\necho hi\n")

	result := scanTree(t, Config{Root: root})

	for _, f := range result.Files {
		if f.Code+f.Comment+f.Blank != f.Total {
			t.Errorf("sum invariant broken for %s: %+v", f.Path, f)
		}
	}
}
