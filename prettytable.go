package prettytable

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Sentinel errors for programmatic error handling.
var (
	ErrRowLengthMismatch = errors.New("row length mismatch")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrInvalidConfig     = errors.New("invalid config")
)

const (
	defaultSpacing       = 1
	defaultBorderPadding = 1
	defaultPlainPadding  = 0
	defaultInnerBorder   = true
)

// Table renders rows of values to a fixed sink. A Table holds only the
// configuration it was built with and is safe to reuse across calls.
type Table struct {
	out         io.Writer
	spacing     int
	padding     int
	border      bool
	innerBorder bool
	strict      bool
}

// Option configures a [Table].
type Option func(*settings)

type settings struct {
	out         io.Writer
	spacing     int
	padding     *int
	border      bool
	innerBorder bool
	strict      bool
}

// WithOutput sets the sink. Default: os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.out = w }
}

// WithSpacing sets the gap between columns that are not separated by an
// inner border. Negative values are treated as zero. Default: 1.
func WithSpacing(n int) Option {
	return func(s *settings) { s.spacing = max(n, 0) }
}

// WithPadding sets the inset inside the outer edge and, with inner borders,
// inside every cell. Negative values are treated as zero.
// Default: 0, or 1 when a border is drawn.
func WithPadding(n int) Option {
	return func(s *settings) {
		n = max(n, 0)
		s.padding = &n
	}
}

// WithBorder draws an outer frame around the table. Default: false.
func WithBorder(on bool) Option {
	return func(s *settings) { s.border = on }
}

// WithInnerBorder controls separator lines between rows and columns of a
// bordered table. It has no effect without [WithBorder]. Default: true.
func WithInnerBorder(on bool) Option {
	return func(s *settings) { s.innerBorder = on }
}

// WithStrict rejects tables whose rows differ in length with
// [ErrRowLengthMismatch]. By default short rows are padded with empty cells.
func WithStrict(on bool) Option {
	return func(s *settings) { s.strict = on }
}

// New returns a Table configured by opts.
func New(opts ...Option) *Table {
	s := settings{
		spacing:     defaultSpacing,
		innerBorder: defaultInnerBorder,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.out == nil {
		s.out = os.Stdout
	}
	padding := defaultPlainPadding
	if s.border {
		padding = defaultBorderPadding
	}
	if s.padding != nil {
		padding = *s.padding
	}
	return &Table{
		out:         s.out,
		spacing:     s.spacing,
		padding:     padding,
		border:      s.border,
		innerBorder: s.innerBorder,
		strict:      s.strict,
	}
}

// Config is the file form of the table options. Nil fields keep their
// defaults.
type Config struct {
	Spacing     *int  `yaml:"spacing" toml:"spacing"`
	Padding     *int  `yaml:"padding" toml:"padding"`
	Border      *bool `yaml:"border" toml:"border"`
	InnerBorder *bool `yaml:"innerBorder" toml:"innerBorder"`
	Strict      *bool `yaml:"strict" toml:"strict"`
}

// Validate reports negative spacing or padding.
func (c Config) Validate() error {
	if c.Spacing != nil && *c.Spacing < 0 {
		return fmt.Errorf("%w: spacing must not be negative, got %d", ErrInvalidConfig, *c.Spacing)
	}
	if c.Padding != nil && *c.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %d", ErrInvalidConfig, *c.Padding)
	}
	return nil
}

// Options converts the set fields of c into options.
func (c Config) Options() []Option {
	var opts []Option
	if c.Spacing != nil {
		opts = append(opts, WithSpacing(*c.Spacing))
	}
	if c.Padding != nil {
		opts = append(opts, WithPadding(*c.Padding))
	}
	if c.Border != nil {
		opts = append(opts, WithBorder(*c.Border))
	}
	if c.InnerBorder != nil {
		opts = append(opts, WithInnerBorder(*c.InnerBorder))
	}
	if c.Strict != nil {
		opts = append(opts, WithStrict(*c.Strict))
	}
	return opts
}

// Write normalizes table, lays it out and writes it to the sink. Every row
// and cell is validated before the first byte is written. Errors from the
// sink are returned unchanged and leave earlier output in place.
func (t *Table) Write(table [][]any) error {
	rows, err := normalize(table, t.strict)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return t.render(rows, columnWidths(rows))
}
