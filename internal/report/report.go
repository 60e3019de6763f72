// Package report renders aggregated scan results for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/blackwell-systems/linecount/internal/counter"
	"github.com/blackwell-systems/linecount/internal/i18n"
	"github.com/blackwell-systems/linecount/internal/output"
	"github.com/blackwell-systems/linecount/internal/scanner"
)

// Report is the complete output model for one scan.
type Report struct {
	Root    string             `json:"root"`
	Files   []counter.FileStat `json:"files"`
	Groups  []counter.Summary  `json:"groups"`
	Totals  counter.Summary    `json:"totals"`
	Skipped []scanner.Skip     `json:"skipped"`
}

// Build assembles a Report from a scan result.
func Build(res *scanner.Result) Report {
	groups, totals := counter.Aggregate(res.Files)
	return Report{
		Root:    res.Root,
		Files:   res.Files,
		Groups:  groups,
		Totals:  totals,
		Skipped: res.Skipped,
	}
}

// Render writes the localized human-readable report. The text layout is
// presentation only; the numeric fields of Report are the contract.
func Render(w io.Writer, rep Report, tr i18n.Translator, verbose bool) error {
	fmt.Fprintln(w, output.Section(tr.T("report.title")))
	fmt.Fprintln(w)

	tbl := output.NewTable(
		tr.T("report.extension"),
		tr.T("report.file_count"),
		tr.T("report.total_lines"),
		tr.T("report.code_lines"),
		tr.T("report.comment_lines"),
		tr.T("report.blank_lines"),
		tr.T("report.code_ratio"),
		tr.T("report.comment_ratio"),
		tr.T("report.blank_ratio"),
	).AlignRight(1, 2, 3, 4, 5, 6, 7, 8)

	for _, g := range rep.Groups {
		tbl.AddRow(
			g.Extension,
			strconv.Itoa(g.Files),
			strconv.Itoa(g.Total),
			strconv.Itoa(g.Code),
			strconv.Itoa(g.Comment),
			strconv.Itoa(g.Blank),
			output.Percent(g.CodeRatio),
			output.Percent(g.CommentRatio),
			output.Percent(g.BlankRatio),
		)
	}

	t := rep.Totals
	tbl.AddStyledRow(output.StyleBold,
		tr.T("report.total"),
		strconv.Itoa(t.Files),
		strconv.Itoa(t.Total),
		strconv.Itoa(t.Code),
		strconv.Itoa(t.Comment),
		strconv.Itoa(t.Blank),
		output.Percent(t.CodeRatio),
		output.Percent(t.CommentRatio),
		output.Percent(t.BlankRatio),
	)

	if _, err := io.WriteString(w, tbl.Render()); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render(tr.T("report.code_ratio")+":"),
		output.RatioBar(t.CodeRatio, 20))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render(tr.T("report.comment_ratio")+":"),
		output.RatioBar(t.CommentRatio, 20))
	fmt.Fprintf(w, " %s %s\n",
		output.StyleLabel.Render(tr.T("report.blank_ratio")+":"),
		output.RatioBar(t.BlankRatio, 20))

	fmt.Fprintln(w)
	skipped := fmt.Sprintf(" %s: %d", tr.T("report.skipped"), len(rep.Skipped))
	if len(rep.Skipped) > 0 {
		skipped = output.StyleError.Render(skipped)
	} else {
		skipped = output.StyleMuted.Render(skipped)
	}
	fmt.Fprintln(w, skipped)

	if verbose {
		for _, s := range rep.Skipped {
			fmt.Fprintf(w, "   %s\n", output.StyleMuted.Render(
				fmt.Sprintf("%s %s: %s", tr.T("report.read_failed"), s.Path, s.Reason)))
		}
	}

	return nil
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}
