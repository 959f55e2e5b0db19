package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/rapidtables"
	"github.com/bjaus/rapidtables/internal/config"
	"github.com/bjaus/rapidtables/internal/input"
	"github.com/bjaus/rapidtables/internal/logging"
)

// Set by the release build.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type rootOptions struct {
	verbosity  int
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "rapidtables",
		Short: "Render JSON or YAML records as aligned text tables",
		Long: `rapidtables reads records (JSON arrays or objects, JSON lines, or YAML
documents) and prints them as an aligned plain, Markdown or reStructuredText
table. Numeric columns are right-aligned.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.Setup(cmd.ErrOrStderr(), opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is ./"+config.DefaultFile+" when present)")

	formatCmd := newFormatCmd(opts)
	rootCmd.AddCommand(formatCmd, newFormatsCmd(), newVersionCmd())

	// A bare invocation formats, so `rapidtables < data.json` works.
	rootCmd.Args = formatCmd.Args
	rootCmd.RunE = formatCmd.RunE
	rootCmd.Flags().AddFlagSet(formatCmd.Flags())

	return rootCmd
}

func newFormatCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format [file...]",
		Short: "Render records from files or standard input",
		Long: `Render records from the given files, or from standard input when no file
(or "-") is given. Records from several inputs are concatenated; the first
record defines the columns.

Settings come from built-in defaults, then the config file, then RAPIDTABLES_*
environment variables, then flags.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.configPath)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			rows, err := readRows(cmd, args)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), cfg, rows)
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", "table format: raw, simple, md or rst")
	flags.StringP("output", "o", "", "output: table, lines or tuples")
	flags.StringSlice("headers", nil, "comma-separated header labels, by column position")
	flags.Bool("no-align", false, "left-align every column")
	flags.Bool("no-header", false, "omit the header (lines and tuples output)")
	flags.String("width", "", "column widths: auto, first-row, N or N,N,...")
	flags.String("separator", "", "column separator (lines output)")
	flags.String("body-sep", "", "character repeated under the header (lines and tuples output)")
	flags.String("body-sep-fill", "", "string between body separator segments (lines output)")
	return cmd
}

// applyFlags overrides configuration with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	strs := map[string]*string{
		"format":        &cfg.Format,
		"output":        &cfg.Output,
		"width":         &cfg.Width,
		"separator":     &cfg.Separator,
		"body-sep":      &cfg.BodySep,
		"body-sep-fill": &cfg.BodySepFill,
	}
	for name, dst := range strs {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	if flags.Changed("headers") {
		headers, err := flags.GetStringSlice("headers")
		if err != nil {
			return err
		}
		cfg.Headers = headers
	}
	if noAlign, _ := flags.GetBool("no-align"); noAlign {
		cfg.Align = "none"
	}
	if noHeader, _ := flags.GetBool("no-header"); noHeader {
		cfg.Header = false
	}
	return cfg.Validate()
}

func readRows(cmd *cobra.Command, args []string) ([]rapidtables.Row, error) {
	logger := logging.Get("input")
	defer logging.Start(logger, "decode")()

	if len(args) == 0 {
		args = []string{"-"}
	}
	var rows []rapidtables.Row
	for _, name := range args {
		var r io.Reader
		if name == "-" {
			r = cmd.InOrStdin()
		} else {
			f, err := os.Open(name)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		decoded, err := input.Decode(r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(name), err)
		}
		logger.Debug().Str("source", displayName(name)).Int("rows", len(decoded)).Msg("Decoded records")
		rows = append(rows, decoded...)
	}
	return rows, nil
}

func displayName(name string) string {
	if name == "-" {
		return "<stdin>"
	}
	return name
}

func render(w io.Writer, cfg *config.Config, rows []rapidtables.Row) error {
	logger := logging.Get("render")
	defer logging.Start(logger, "render")()

	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	logger.Debug().
		Str("format", cfg.Format).
		Str("output", cfg.Output).
		Str("width", cfg.Width).
		Int("rows", len(rows)).
		Msg("Rendering table")

	switch cfg.Output {
	case config.OutputLines:
		return writeLines(w, rapidtables.FormatTable(rows, append(opts, rapidtables.WithOutput(rapidtables.OutputLines))...))
	case config.OutputTuples:
		return writeTuples(w, rapidtables.FormatTable(rows, append(opts, rapidtables.WithOutput(rapidtables.OutputTuples))...))
	default:
		f, err := rapidtables.ParseFormat(cfg.Format)
		if err != nil {
			return err
		}
		return rapidtables.WriteTable(w, f, rows, opts...)
	}
}

func writeLines(w io.Writer, b *rapidtables.Bundle) error {
	if b == nil {
		return nil
	}
	if b.HasHeader {
		if _, err := fmt.Fprintln(w, b.Header); err != nil {
			return err
		}
	}
	if b.HasSeparator {
		if _, err := fmt.Fprintln(w, b.Separator); err != nil {
			return err
		}
	}
	for line := range b.Lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeTuples(w io.Writer, b *rapidtables.Bundle) error {
	if b == nil {
		return nil
	}
	if b.HasHeader {
		if _, err := fmt.Fprintln(w, strings.Join(b.HeaderCells, "\t")); err != nil {
			return err
		}
	}
	if b.HasSeparator {
		if _, err := fmt.Fprintln(w, strings.Join(b.SeparatorCells, "\t")); err != nil {
			return err
		}
	}
	for cells := range b.Tuples {
		if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return nil
}

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List table formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, f := range rapidtables.Formats() {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for rapidtables`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rapidtables version %s\n", version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", date)
		},
	}
}
