// Package config provides configuration loading and defaults for linecount.
package config

// DefaultExcludeDirs are directory base names pruned when no explicit
// exclude list is given. Version-control metadata, package caches, and
// editor state are never interesting line counts.
var DefaultExcludeDirs = []string{".git", "__pycache__", "node_modules", ".vscode", ".idea"}

// DefaultLanguage is the default report language code.
const DefaultLanguage = "en"

// DefaultConfigDir is the default location for linecount configuration.
const DefaultConfigDir = "~/.config/linecount"

// DefaultConfigFile is the filename for the YAML config.
const DefaultConfigFile = "config.yaml"

// DefaultCountUnknown controls whether files with unrecognized extensions
// are counted as plain text. Off by default: the built-in rule table is
// the gate unless an include filter is given.
const DefaultCountUnknown = false

// DefaultJobs is the default classification parallelism. 0 means one
// worker per CPU.
const DefaultJobs = 0

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}
