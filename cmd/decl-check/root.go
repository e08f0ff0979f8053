package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"decl-check/internal/config"
	"decl-check/internal/diff"
	"decl-check/internal/logging"
	"decl-check/internal/names"
	"decl-check/internal/report"
	"decl-check/internal/textutil"
	"decl-check/internal/walkwalk"
)

// exitMissing is the exit status of --fail-on-missing when names are missing.
const exitMissing = 3

// exitError carries a non-zero exit status without an error message.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

var (
	defaultExts    = []string{".js", ".mjs", ".cjs", ".jsx", ".ts", ".tsx"}
	defaultExclude = []string{".git", "node_modules", "dist", "build"}
)

// options holds the parsed command-line flags.
type options struct {
	configPath    string
	encoding      string
	exts          []string
	exclude       []string
	useGitignore  bool
	format        string
	showDiff      bool
	diffContext   int
	failOnMissing bool
	verbose       bool
	logFormat     string
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "decl-check [flags] <old-file> [new-file|new-dir ...]",
		Short: "List function/class names from an old file that are missing from new files",
		Long: "Scans one old source file and a set of new files for `function <name>` and\n" +
			"`class <name>` declarations and prints the old names that none of the new\n" +
			"files declare. Directories given as new inputs expand to their source files.",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default $"+config.EnvConfigPath+")")
	f.StringVar(&opts.encoding, "encoding", textutil.DefaultCharset, "text encoding of the input files")
	f.StringSliceVar(&opts.exts, "ext", defaultExts, "extensions collected from new-file directories")
	f.StringSliceVar(&opts.exclude, "exclude", defaultExclude, "directory-name prefixes (or exact file names) skipped when expanding directories")
	f.BoolVar(&opts.useGitignore, "use-gitignore", true, "honor a directory's .gitignore when expanding it")
	f.StringVar(&opts.format, "format", report.FormatText, "report format: text or json")
	f.BoolVar(&opts.showDiff, "diff", false, "append a unified diff of the old and new name lists")
	f.IntVar(&opts.diffContext, "diff-context", 3, "context lines for --diff")
	f.BoolVar(&opts.failOnMissing, "fail-on-missing", false, fmt.Sprintf("exit with status %d when names are missing", exitMissing))
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	f.StringVar(&opts.logFormat, "log-format", "text", "log record format on stderr: text or json")
	return cmd
}

// resolveConfig merges the config file, positional args and flags. Flags
// the user set explicitly win over the file; unset flags only fill gaps.
func resolveConfig(cmd *cobra.Command, opts options, args []string) (config.Config, error) {
	var cfg config.Config
	path := opts.configPath
	if path == "" {
		path = config.Get(config.EnvConfigPath)
	}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	cfg = cfg.WithArgs(args)

	flags := cmd.Flags()
	if flags.Changed("encoding") || cfg.Encoding == "" {
		cfg.Encoding = opts.encoding
	}
	if flags.Changed("ext") || len(cfg.Extensions) == 0 {
		cfg.Extensions = opts.exts
	}
	if flags.Changed("exclude") || len(cfg.Exclude) == 0 {
		cfg.Exclude = opts.exclude
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("%w (pass <old-file> or --config)", err)
	}
	if _, err := textutil.Lookup(cfg.Encoding); err != nil {
		return config.Config{}, err
	}
	switch strings.ToLower(opts.format) {
	case report.FormatText, report.FormatJSON:
	default:
		return config.Config{}, fmt.Errorf("unknown --format %q (want text or json)", opts.format)
	}
	switch strings.ToLower(opts.logFormat) {
	case "text", "json":
	default:
		return config.Config{}, fmt.Errorf("unknown --log-format %q (want text or json)", opts.logFormat)
	}
	return cfg, nil
}

func run(stdout, stderr io.Writer, cfg config.Config, opts options) error {
	log := logging.New(stderr, opts.logFormat, opts.verbose)

	newPaths, err := walkwalk.Expand(cfg.New, walkwalk.Options{
		Exts:         cfg.Extensions,
		Exclude:      cfg.Exclude,
		UseGitignore: opts.useGitignore,
	})
	if err != nil {
		return fmt.Errorf("expand inputs: %w", err)
	}
	log.Debug("resolved inputs", "old", cfg.Old, "new", len(newPaths), "encoding", cfg.Encoding)

	ex := names.NewExtractor(cfg.Encoding, stderr, log)
	oldNames, err := ex.Extract(cfg.Old)
	if err != nil {
		return err
	}
	newNames, err := ex.Collect(newPaths)
	if err != nil {
		return err
	}

	rep := report.Generate(oldNames, newNames)
	if opts.showDiff {
		rep.Diff, err = diff.Names(cfg.Old, fmt.Sprintf("new (%d files)", len(newPaths)),
			oldNames.Sorted(), newNames.Sorted(), diff.Options{Context: opts.diffContext})
		if err != nil {
			return err
		}
	}
	if err := rep.Write(stdout, strings.ToLower(opts.format)); err != nil {
		return err
	}

	log.Debug("comparison done", "old", rep.OldCount, "new", rep.NewTotal, "missing", len(rep.Missing))
	if opts.failOnMissing && len(rep.Missing) > 0 {
		log.Warn("names missing from new files", "missing", len(rep.Missing))
		return &exitError{code: exitMissing}
	}
	return nil
}
