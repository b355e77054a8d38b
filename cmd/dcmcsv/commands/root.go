package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simonhull/dcmcsv"
	"github.com/simonhull/dcmcsv/internal/config"
	"github.com/simonhull/dcmcsv/internal/dict"
	"github.com/simonhull/dcmcsv/internal/printer"
)

var (
	commit = "none"
	date   = "unknown"
)

// SetVersionInfo records build metadata shown by --version.
func SetVersionInfo(c, d string) {
	commit = c
	date = d
}

// options holds flag values for one invocation.
type options struct {
	tags       []string
	tagFiles   []string
	until      string
	jobs       int
	output     string
	extension  string
	configPath string
	charset    string
	lenient    bool
	verbose    int
	complete   string
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// NewRootCmd builds the dcmcsv command. Each call returns an independent
// command, so tests can run several side by side.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "dcmcsv [flags] <input>... [-- <output.csv>]",
		Short: "Extract DICOM metadata fields to CSV",
		Long: `dcmcsv reads DICOM Part 10 files and writes one CSV row per file with the
requested fields as columns.

Inputs are files or directories; directories contribute their direct
entries with the --extension suffix. Fields are named by dictionary keyword
(PatientName) or numerically (00100010, 0010,0010 or (0010,0010)).

Decoding stops at --until (PixelData by default) so image data is never read.
Files that cannot be decoded are listed on stderr and skipped.`,
		Example: `  dcmcsv -t PatientName -t PatientID study/ > patients.csv
  dcmcsv -f tags.txt -j 8 series1/ series2/ -- out.csv
  dcmcsv --complete bash > /etc/bash_completion.d/dcmcsv`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", dcmcsv.Version, commit, date),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		// Errors are printed by the printer package
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := cmd.Flags()
	f.StringArrayVarP(&opts.tags, "tag", "t", nil, "field to extract, repeatable (keyword or gggg,eeee)")
	f.StringArrayVarP(&opts.tagFiles, "tag-file", "f", nil, "file with one field per line, repeatable")
	f.StringVar(&opts.until, "until", "PixelData", "stop decoding at this field")
	f.IntVarP(&opts.jobs, "jobs", "j", 0, "files decoded in parallel (0 = number of CPUs)")
	f.StringVarP(&opts.output, "output", "o", "", "CSV output file (default stdout)")
	f.StringVar(&opts.extension, "extension", dcmcsv.DefaultExtension, "file extension kept when expanding directories")
	f.StringVar(&opts.configPath, "config", "", "YAML configuration file")
	f.StringVar(&opts.charset, "charset", "", "character set for files that declare none, e.g. \"ISO_IR 100\"")
	f.BoolVar(&opts.lenient, "lenient", false, "keep fields read before a decoding error in truncated files")
	f.CountVarP(&opts.verbose, "verbose", "v", "increase log verbosity (-v info, -vv debug)")
	f.StringVar(&opts.complete, "complete", "", "print a completion script for bash, zsh, fish or powershell and exit")

	_ = cmd.MarkFlagFilename("tag-file", "txt")
	_ = cmd.MarkFlagFilename("config", "yml", "yaml")
	_ = cmd.MarkFlagFilename("output", "csv")
	_ = cmd.RegisterFlagCompletionFunc("tag", completeKeyword)
	_ = cmd.RegisterFlagCompletionFunc("until", completeKeyword)
	_ = cmd.RegisterFlagCompletionFunc("complete", cobra.FixedCompletions(completionShells, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// Execute runs the command against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func completeKeyword(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for e := range dict.Standard().All() {
		if strings.HasPrefix(e.Alias, toComplete) {
			out = append(out, e.Alias)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	pr := printer.New(cmd.ErrOrStderr())

	if opts.complete != "" {
		return writeCompletion(pr, cmd.Root(), cmd.OutOrStdout(), opts.complete)
	}

	log := newLogger(cmd.ErrOrStderr(), opts.verbose)

	inputs, output, err := splitArgs(pr, cmd, args, opts.output)
	if err != nil {
		return err
	}

	if opts.configPath != "" {
		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return pr.Error("Invalid configuration", err.Error(), []string{
				"Check the YAML syntax and key names (tags, tag_files, until, jobs, extension, output, charset, lenient)",
			})
		}
		output = mergeConfig(cmd, opts, cfg, output)
	}

	r := dcmcsv.NewResolver(nil)

	until, err := r.Resolve(opts.until)
	if err != nil {
		return resolutionFailed(pr, err, "--until")
	}

	spec, err := dcmcsv.BuildTagSpec(r, opts.tags, opts.tagFiles)
	if err != nil {
		return resolutionFailed(pr, err, "")
	}
	if spec.Len() == 0 {
		pr.Warning("no fields requested, nothing to do\n")
		return nil
	}

	if len(inputs) == 0 {
		return pr.Error("No inputs", "Give at least one DICOM file or directory.", []string{
			"Run 'dcmcsv --help' for usage",
		})
	}

	paths, err := dcmcsv.ExpandInputs(inputs, opts.extension)
	if err != nil {
		return pr.Error("Invalid input path", err.Error(), []string{
			"Inputs must be existing regular files or directories",
		})
	}
	if len(paths) == 0 {
		pr.Warning("no %s files found, nothing to do\n", opts.extension)
		return nil
	}

	names := make([]string, 0, spec.Len())
	for _, tag := range spec.Tags() {
		names = append(names, fmt.Sprintf("%s %s", r.DisplayName(tag), tag))
	}
	log.Info("resolved fields", "fields", strings.Join(names, ", "))
	log.Info("read boundary", "until", r.DisplayName(until), "tag", until.String())
	log.Info("processing files", "count", len(paths), "jobs", opts.jobs)

	var openOpts []dcmcsv.Option
	if opts.charset != "" {
		openOpts = append(openOpts, dcmcsv.WithCharsetFallback(opts.charset))
	}
	if opts.lenient {
		openOpts = append(openOpts, dcmcsv.WithLenientParsing())
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results := dcmcsv.ExtractMany(ctx, paths, spec, until,
		dcmcsv.WithJobs(opts.jobs),
		dcmcsv.WithLogger(log),
		dcmcsv.WithDecoder(dcmcsv.FileDecoder{Options: openOpts}),
	)
	table := dcmcsv.Assemble(results, spec, r)

	if output != "" {
		err = table.WriteFile(output)
	} else {
		err = table.WriteCSV(cmd.OutOrStdout())
	}
	if err != nil {
		return pr.Error("Failed to write output", err.Error(), nil)
	}
	if output != "" {
		pr.Success("wrote %d rows to %s\n", len(table.Rows), output)
	}

	failures := make([]error, len(table.Failures))
	for i, f := range table.Failures {
		failures[i] = f
	}
	pr.Skipped(failures, len(paths))
	log.Info("finished", "rows", len(table.Rows), "skipped", len(table.Failures))
	return nil
}

// splitArgs separates inputs from the optional output path given after "--".
func splitArgs(pr *printer.Printer, cmd *cobra.Command, args []string, output string) ([]string, string, error) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, output, nil
	}

	trailing := args[dash:]
	switch {
	case len(trailing) == 0:
		return args[:dash], output, nil
	case len(trailing) > 1:
		return nil, "", pr.Error("Too many output paths",
			fmt.Sprintf("Expected one path after --, got %d: %s", len(trailing), strings.Join(trailing, " ")), nil)
	case output != "":
		return nil, "", pr.Error("Output given twice",
			fmt.Sprintf("Both --output %s and -- %s were given.", output, trailing[0]), []string{
				"Use either --output or a trailing path after --",
			})
	}
	return args[:dash], trailing[0], nil
}

// mergeConfig applies config values for flags not set on the command line.
// Tag lists are concatenated, config entries first.
func mergeConfig(cmd *cobra.Command, opts *options, cfg *config.Config, output string) string {
	flags := cmd.Flags()

	opts.tags = append(append([]string(nil), cfg.Tags...), opts.tags...)
	opts.tagFiles = append(append([]string(nil), cfg.TagFiles...), opts.tagFiles...)

	if cfg.Until != "" && !flags.Changed("until") {
		opts.until = cfg.Until
	}
	if cfg.Jobs != nil && !flags.Changed("jobs") {
		opts.jobs = *cfg.Jobs
	}
	if cfg.Extension != "" && !flags.Changed("extension") {
		opts.extension = cfg.Extension
	}
	if cfg.Charset != "" && !flags.Changed("charset") {
		opts.charset = cfg.Charset
	}
	if cfg.Lenient && !flags.Changed("lenient") {
		opts.lenient = true
	}
	if cfg.Output != "" && output == "" {
		output = cfg.Output
	}
	return output
}

func resolutionFailed(pr *printer.Printer, err error, source string) error {
	var re *dcmcsv.ResolutionError
	if !errors.As(err, &re) {
		return pr.Error("Cannot read tag file", err.Error(), nil)
	}
	if re.Source == "" {
		re.Source = source
	}
	return pr.Error("Unknown field identifier", re.Error(), []string{
		"Use a dictionary keyword such as PatientName (case-sensitive)",
		"Or a numeric tag: 00100010, 0010,0010 or (0010,0010)",
	})
}

func writeCompletion(pr *printer.Printer, root *cobra.Command, w io.Writer, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletionV2(w, true)
	case "zsh":
		return root.GenZshCompletion(w)
	case "fish":
		return root.GenFishCompletion(w, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(w)
	}
	return pr.Error("Unknown shell", fmt.Sprintf("Cannot generate completion for %q.", shell), []string{
		"Supported shells: " + strings.Join(completionShells, ", "),
	})
}

// newLogger returns a text logger on w: warnings by default, -v info,
// -vv debug.
func newLogger(w io.Writer, verbose int) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose >= 2:
		level = slog.LevelDebug
	case verbose == 1:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
