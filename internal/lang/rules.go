// Package lang maps file extensions to comment syntax rules.
package lang

import (
	"sort"
	"strings"
)

// BlockPair is a block comment delimiter pair, e.g. /* and */.
type BlockPair struct {
	Open  string
	Close string
}

// Rule describes the comment syntax for one file extension.
type Rule struct {
	// Extension is the lowercase file extension including the leading dot.
	Extension string

	// LineMarkers are prefixes that make the rest of a line a comment.
	LineMarkers []string

	// BlockPairs are the block comment delimiters for the language.
	// Python's triple quotes are listed here: treating module/function
	// docstrings as block comments is the conventional line-counting
	// heuristic for languages without true block comments.
	BlockPairs []BlockPair
}

var (
	cStyle    = []BlockPair{{Open: "/*", Close: "*/"}}
	htmlStyle = []BlockPair{{Open: "<!--", Close: "-->"}}
	pyStyle   = []BlockPair{{Open: `"""`, Close: `"""`}, {Open: "'''", Close: "'''"}}
)

// rules is the built-in table, keyed by lowercase extension.
var rules = map[string]Rule{}

func register(markers []string, pairs []BlockPair, extensions ...string) {
	for _, ext := range extensions {
		rules[ext] = Rule{
			Extension:   ext,
			LineMarkers: markers,
			BlockPairs:  pairs,
		}
	}
}

func init() {
	register([]string{"//"}, cStyle,
		".c", ".h", ".cpp", ".cc", ".cxx", ".hpp", ".hh", ".hxx")
	register([]string{"//"}, cStyle, ".go")
	register([]string{"//"}, cStyle, ".java", ".kt", ".kts", ".scala")
	register([]string{"//"}, cStyle, ".js", ".jsx", ".ts", ".tsx", ".mjs", ".cjs")
	register([]string{"//"}, cStyle, ".rs")
	register([]string{"//"}, cStyle, ".swift")
	register([]string{"//"}, cStyle, ".cs")
	register([]string{"//"}, cStyle, ".php")
	register([]string{"#"}, pyStyle, ".py", ".pyw")
	register([]string{"#"}, nil, ".sh", ".bash", ".zsh", ".fish")
	register([]string{"#"}, nil, ".yaml", ".yml", ".toml")
	register([]string{"#"}, nil, ".pl", ".pm")
	register([]string{"#"}, []BlockPair{{Open: "=begin", Close: "=end"}}, ".rb")
	register([]string{"#"}, nil, ".r")
	register([]string{"--"}, cStyle, ".sql")
	register([]string{"--"}, []BlockPair{{Open: "{-", Close: "-}"}}, ".hs")
	register([]string{"%"}, nil, ".tex")
	register([]string{";"}, nil, ".lisp", ".el", ".clj", ".cljs")
	register([]string{"//"}, cStyle, ".scss", ".less")
	register(nil, cStyle, ".css")
	register(nil, htmlStyle, ".html", ".htm", ".xml", ".svg", ".vue")
	// Lua's --[[ block marker is omitted: it begins with the -- line
	// marker, which classifies the opening line first, so a block pair
	// here would never be entered.
	register([]string{"--"}, nil, ".lua")
}

// Lookup returns the rule for an extension. Matching is case-insensitive;
// ext must include the leading dot. Unknown extensions return ok=false,
// which callers treat as "skip" unless an include filter says otherwise.
func Lookup(ext string) (Rule, bool) {
	rule, ok := rules[strings.ToLower(ext)]
	return rule, ok
}

// PlainText returns a rule with no comment markers for the given extension.
// Used when an include filter forces counting of an unrecognized extension:
// every non-blank line is code.
func PlainText(ext string) Rule {
	return Rule{Extension: strings.ToLower(ext)}
}

// Extensions returns all registered extensions in alphabetical order.
func Extensions() []string {
	exts := make([]string, 0, len(rules))
	for ext := range rules {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
