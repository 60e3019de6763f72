package counter

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/blackwell-systems/linecount/internal/lang"
)

// lineKind is the classification of a single line.
type lineKind int

const (
	kindBlank lineKind = iota
	kindComment
	kindCode
)

// classifier is a two-state automaton over the lines of one file. The only
// state is whether the previous line left an unclosed block comment, and
// which delimiter pair opened it.
type classifier struct {
	rule    lang.Rule
	inBlock bool
	pair    lang.BlockPair
}

// classifyLine assigns one line to exactly one category and advances the
// automaton. At most one state transition happens per line.
func (c *classifier) classifyLine(line string) lineKind {
	stripped := strings.TrimSpace(line)

	if c.inBlock {
		// An empty line inside a block comment is still part of the block.
		// The close marker consumes the rest of its line: anything after it
		// is not re-examined.
		if strings.Contains(stripped, c.pair.Close) {
			c.inBlock = false
		}
		return kindComment
	}

	if stripped == "" {
		return kindBlank
	}

	for _, marker := range c.rule.LineMarkers {
		if strings.HasPrefix(stripped, marker) {
			return kindComment
		}
	}

	for _, pair := range c.rule.BlockPairs {
		if !strings.HasPrefix(stripped, pair.Open) {
			continue
		}
		// Look for the close marker after the open marker, so pairs with
		// identical open and close (Python triple quotes) work. Nested
		// blocks are not supported: once inside, only the close marker
		// matters.
		rest := stripped[len(pair.Open):]
		if !strings.Contains(rest, pair.Close) {
			c.inBlock = true
			c.pair = pair
		}
		return kindComment
	}

	return kindCode
}

// ClassifyReader counts the lines of a file's content under the given rule.
// Lines are read in a streaming fashion; a trailing newline does not
// produce a phantom empty line. A file that ends inside a block comment is
// not an error.
func ClassifyReader(r io.Reader, rule lang.Rule) (FileStat, error) {
	var stat FileStat
	c := classifier{rule: rule}

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && len(line) == 0 {
			break
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return FileStat{}, err
		}

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")

		stat.Total++
		switch c.classifyLine(line) {
		case kindBlank:
			stat.Blank++
		case kindComment:
			stat.Comment++
		case kindCode:
			stat.Code++
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	return stat, nil
}
