package app

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/linecount/internal/lang"
	"github.com/blackwell-systems/linecount/internal/output"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List recognized extensions and their comment markers",
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl := output.NewTable("Extension", "Line Markers", "Block Comments")

		for _, ext := range lang.Extensions() {
			rule, _ := lang.Lookup(ext)

			pairs := make([]string, 0, len(rule.BlockPairs))
			for _, p := range rule.BlockPairs {
				pairs = append(pairs, p.Open+" "+p.Close)
			}

			tbl.AddRow(ext,
				strings.Join(rule.LineMarkers, ", "),
				strings.Join(pairs, ", "))
		}

		_, err := cmd.OutOrStdout().Write([]byte(tbl.Render()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
