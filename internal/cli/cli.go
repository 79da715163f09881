// Package cli implements the prettytable command-line interface.
//
// The single command reads a table from a file or stdin in one of the
// formats of the source package and renders it with the prettytable
// engine. Table options come from an optional YAML or TOML config file,
// overridden by flags given on the command line.
//
// # Logging
//
// Diagnostics go to stderr through charmbracelet/log. --verbose (-v)
// enables debug output. The logger travels on the command context.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	prettytable "github.com/wikander/pretty-table"
	"github.com/wikander/pretty-table/internal/source"
)

const appName = "prettytable"

// Version is reported by --version. Set at build time with -ldflags.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var errInteractiveStdin = errors.New("no input: pass a FILE or pipe a table on stdin")

// CLI holds the process streams shared by all commands.
type CLI struct {
	Logger *log.Logger
	Stdin  io.Reader
	Stdout io.Writer
}

// New creates a CLI that logs to stderr at level.
func New(stdin io.Reader, stdout, stderr io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(stderr, level),
		Stdin:  stdin,
		Stdout: stdout,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

type renderOptions struct {
	format      string
	spacing     int
	padding     int
	border      bool
	innerBorder bool
	strict      bool
	configPath  string
	outputPath  string
	verbose     bool
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	var opts renderOptions

	root := &cobra.Command{
		Use:   appName + " [flags] [FILE]",
		Short: "Render a table as aligned monospace text",
		Long: `prettytable reads rows from FILE (or stdin when FILE is absent or "-")
and prints them as aligned columns, optionally framed with box-drawing
characters.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.run(cmd, path, opts)
		},
	}

	fs := root.Flags()
	fs.StringVarP(&opts.format, "format", "f", "", fmt.Sprintf("input format %v (default: from FILE extension, else csv)", source.Formats()))
	fs.IntVar(&opts.spacing, "spacing", 1, "spaces between columns without inner borders")
	fs.IntVar(&opts.padding, "padding", 0, "inset inside the edges (default 1 with --border)")
	fs.BoolVarP(&opts.border, "border", "b", false, "draw a box-drawing frame")
	fs.BoolVar(&opts.innerBorder, "inner-border", true, "draw separators between rows and columns of a bordered table")
	fs.BoolVar(&opts.strict, "strict", false, "fail on rows of unequal length instead of padding them")
	fs.StringVar(&opts.configPath, "config", "", "YAML or TOML file with table options")
	fs.StringVarP(&opts.outputPath, "output", "o", "", "write to a file instead of stdout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	return root
}

func (c *CLI) run(cmd *cobra.Command, path string, opts renderOptions) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cfg := prettytable.Config{}
	if opts.configPath != "" {
		var err error
		if cfg, err = loadConfig(opts.configPath); err != nil {
			return err
		}
		logger.Debug("loaded config", "path", opts.configPath)
	}
	applyFlags(cmd.Flags(), opts, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	format, err := resolveFormat(opts.format, path)
	if err != nil {
		return err
	}

	in, closeIn, err := c.openInput(path)
	if err != nil {
		return err
	}
	defer closeIn()

	p := newProgress(logger)
	rows, err := source.Read(in, format)
	if err != nil {
		return fmt.Errorf("read %s: %w", displayName(path), err)
	}
	p.done("decoded input", "format", format, "rows", len(rows))

	if err := ctx.Err(); err != nil {
		return err
	}

	out, closeOut, err := c.openOutput(opts.outputPath)
	if err != nil {
		return err
	}
	defer closeOut()

	p = newProgress(logger)
	tbl := prettytable.New(append(cfg.Options(), prettytable.WithOutput(out))...)
	if err := tbl.Write(rows); err != nil {
		return err
	}
	if len(rows) > 0 {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	p.done("rendered table")
	return nil
}

// applyFlags copies flags set on the command line over the file config.
func applyFlags(fs *pflag.FlagSet, opts renderOptions, cfg *prettytable.Config) {
	if fs.Changed("spacing") {
		cfg.Spacing = &opts.spacing
	}
	if fs.Changed("padding") {
		cfg.Padding = &opts.padding
	}
	if fs.Changed("border") {
		cfg.Border = &opts.border
	}
	if fs.Changed("inner-border") {
		cfg.InnerBorder = &opts.innerBorder
	}
	if fs.Changed("strict") {
		cfg.Strict = &opts.strict
	}
}

func resolveFormat(flag, path string) (source.Format, error) {
	if flag != "" {
		return source.ParseFormat(flag)
	}
	if f, ok := source.FormatFromPath(path); ok {
		return f, nil
	}
	return source.CSV, nil
}

func (c *CLI) openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		if path == "" && isTerminal(c.Stdin) {
			return nil, nil, errInteractiveStdin
		}
		return c.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func (c *CLI) openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return c.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
