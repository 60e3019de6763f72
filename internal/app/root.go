// Package app contains the Cobra command tree for linecount.
package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/linecount/internal/config"
	"github.com/blackwell-systems/linecount/internal/i18n"
	"github.com/blackwell-systems/linecount/internal/output"
	"github.com/blackwell-systems/linecount/internal/report"
	"github.com/blackwell-systems/linecount/internal/scanner"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string

	flagExclude      []string
	flagInclude      []string
	flagLang         string
	flagCountUnknown bool
	flagJobs         int
)

var rootCmd = &cobra.Command{
	Use:   "linecount [path]",
	Short: "Count code, comment, and blank lines across a directory tree",
	Long: `linecount walks a directory tree, classifies every line of each
recognized source file as code, comment, or blank, and reports totals
grouped by file extension.

Comment detection is line-based: per-language line markers and block
delimiters, tracked across lines, with no AST-level parsing. Files that
cannot be read are skipped and tallied, never fatal.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/linecount/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")

	rootCmd.Flags().StringSliceVarP(&flagExclude, "exclude", "e", nil, "Directory names to prune (replaces the default exclude set)")
	rootCmd.Flags().StringSliceVarP(&flagInclude, "include", "i", nil, "Only count these file extensions (e.g. .py)")
	rootCmd.Flags().StringVar(&flagLang, "lang", "", "Report language: "+strings.Join(i18n.Codes(), ", "))
	rootCmd.Flags().BoolVar(&flagCountUnknown, "count-unknown", false, "Count unrecognized extensions as plain text")
	rootCmd.Flags().IntVar(&flagJobs, "jobs", 0, "Classification parallelism (0 = one per CPU)")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	// Flags override config. An explicit -e replaces the default exclude
	// set rather than extending it, matching an explicit exclude_dirs key
	// in the config file.
	excludeDirs := cfg.ExcludeDirs
	if cmd.Flags().Changed("exclude") {
		excludeDirs = flagExclude
	}
	includeExts := cfg.IncludeExtensions
	if cmd.Flags().Changed("include") {
		includeExts = flagInclude
	}
	langCode := cfg.Language
	if cmd.Flags().Changed("lang") {
		langCode = flagLang
	}
	countUnknown := cfg.CountUnknown
	if cmd.Flags().Changed("count-unknown") {
		countUnknown = flagCountUnknown
	}
	jobs := cfg.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = flagJobs
	}

	if !i18n.Supported(langCode) {
		return fmt.Errorf("unsupported language %q (choose from %s)",
			langCode, strings.Join(i18n.Codes(), ", "))
	}

	configureColor(cfg)

	scanCfg := scanner.Config{
		Root:         root,
		IncludeExts:  normalizeExtensions(includeExts),
		ExcludeDirs:  toSet(excludeDirs),
		CountUnknown: countUnknown,
		Jobs:         jobs,
	}

	result, err := scanner.Scan(scanCfg)
	if err != nil {
		return err
	}

	rep := report.Build(result)

	if flagJSON {
		return report.RenderJSON(cmd.OutOrStdout(), rep)
	}
	return report.Render(cmd.OutOrStdout(), rep, i18n.New(i18n.Lang(langCode)), flagVerbose)
}

// configureColor disables styling when asked to, or when stdout is not a
// terminal, so piped output stays clean.
func configureColor(cfg *config.Config) {
	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if flagNoColor || !cfg.Output.Color || !interactive {
		output.SetNoColor(true)
	}
}

// normalizeExtensions lowercases extensions and adds the leading dot when
// missing, so "-i py" and "-i .PY" both mean ".py".
func normalizeExtensions(exts []string) map[string]bool {
	if len(exts) == 0 {
		return nil
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}
