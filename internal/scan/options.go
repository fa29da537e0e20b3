package scan

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"
)

const (
	// DefaultFilter matches every name that does not start with a dot.
	DefaultFilter = `^[^.].*`

	// HiddenFilter matches dot-prefixed names.
	HiddenFilter = `^\.`
)

var (
	// ErrInvalidPattern is returned when a filter expression does not compile.
	ErrInvalidPattern = errors.New("invalid filter pattern")

	// ErrInvalidDirectory is returned when the scan target is missing,
	// unreadable or not a directory.
	ErrInvalidDirectory = errors.New("invalid directory")
)

// Pattern is a compiled file name filter. A name matches when the
// expression finds a match anywhere in it.
type Pattern struct {
	expr string
	re   *regexp.Regexp
}

// NewPattern compiles expr once so a bad filter fails before any I/O.
func NewPattern(expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, expr, err)
	}
	return &Pattern{expr: expr, re: re}, nil
}

// MustPattern is NewPattern for constant expressions.
func MustPattern(expr string) *Pattern {
	p, err := NewPattern(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether name contains a match.
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// Options configures a directory listing.
type Options struct {
	// Pattern selects which names are kept.
	Pattern *Pattern

	// Logger receives debug output for skipped entries. Nil disables it.
	Logger *slog.Logger
}

// DefaultOptions returns options that list all non-hidden files.
func DefaultOptions() *Options {
	return &Options{
		Pattern: MustPattern(DefaultFilter),
	}
}

// WithPattern sets the name filter.
func (o *Options) WithPattern(p *Pattern) *Options {
	o.Pattern = p
	return o
}

// WithLogger sets the debug logger.
func (o *Options) WithLogger(logger *slog.Logger) *Options {
	o.Logger = logger
	return o
}

// SetFilter compiles expr and uses it as the name filter.
func (o *Options) SetFilter(expr string) error {
	p, err := NewPattern(expr)
	if err != nil {
		return err
	}
	o.Pattern = p
	return nil
}
