// Package counter classifies file content into code, comment, and blank
// lines and aggregates per-file results into extension groups.
package counter

// FileStat holds the line counts for a single file.
type FileStat struct {
	// Path is the file path relative to the scan root.
	Path string `json:"path"`

	// Extension is the lowercase file extension including the leading dot.
	Extension string `json:"extension"`

	// Total is the number of lines in the file.
	Total int `json:"total"`

	// Code is the number of code lines.
	Code int `json:"code"`

	// Comment is the number of comment lines.
	Comment int `json:"comment"`

	// Blank is the number of blank lines. Every line lands in exactly one
	// of code/comment/blank, so Code+Comment+Blank == Total.
	Blank int `json:"blank"`
}

// Summary holds aggregated counts for one extension group, or for the
// grand total across all groups.
type Summary struct {
	// Extension identifies the group. Empty for the grand total.
	Extension string `json:"extension,omitempty"`

	// Files is the number of files in the group.
	Files int `json:"files"`

	// Total, Code, Comment, and Blank are elementwise sums over the group.
	Total   int `json:"total"`
	Code    int `json:"code"`
	Comment int `json:"comment"`
	Blank   int `json:"blank"`

	// CodeRatio, CommentRatio, and BlankRatio are each category's share of
	// Total, in [0,1]. All 0 when Total is 0.
	CodeRatio    float64 `json:"code_ratio"`
	CommentRatio float64 `json:"comment_ratio"`
	BlankRatio   float64 `json:"blank_ratio"`
}
