package awk

import (
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// DefaultBinary is the program name used when none is configured
const DefaultBinary = "awk"

// QuoteStyle selects how Command.Format quotes its arguments
type QuoteStyle int

const (
	// QuotePOSIX wraps arguments in single quotes
	QuotePOSIX QuoteStyle = iota
	// QuoteWindows wraps arguments in double quotes
	QuoteWindows
)

// ErrUnknownQuoteStyle is returned by ParseQuoteStyle
var ErrUnknownQuoteStyle = errors.New("unknown target platform")

// DefaultQuoteStyle returns the style of the running platform
func DefaultQuoteStyle() QuoteStyle {
	if runtime.GOOS == "windows" {
		return QuoteWindows
	}
	return QuotePOSIX
}

// ParseQuoteStyle accepts a target platform name. The empty string selects
// DefaultQuoteStyle.
func ParseQuoteStyle(s string) (QuoteStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultQuoteStyle(), nil
	case "posix", "unix", "linux", "macos", "darwin", "linux/macos":
		return QuotePOSIX, nil
	case "windows", "win":
		return QuoteWindows, nil
	}
	return QuotePOSIX, errors.Wrapf(ErrUnknownQuoteStyle, "%q", s)
}

func (q QuoteStyle) String() string {
	if q == QuoteWindows {
		return "windows"
	}
	return "posix"
}

// quote wraps s for display in the given style
func (q QuoteStyle) quote(s string) string {
	if q == QuoteWindows {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Command is a ready-to-run awk invocation
type Command struct {
	Binary    string
	Separator Separator
	Program   CompiledProgram
	Path      string
}

// NewCommand builds req and wraps the program for the file at path
func NewCommand(binary string, req BuildRequest, path string) Command {
	if binary == "" {
		binary = DefaultBinary
	}
	return Command{
		Binary:    binary,
		Separator: req.Separator,
		Program:   Build(req),
		Path:      path,
	}
}

// Args returns the argument vector for execution, binary first
func (c Command) Args() []string {
	args := []string{c.Binary}
	if c.Separator != Whitespace {
		args = append(args, "-F", string(c.Separator))
	}
	args = append(args, c.Program.String())
	if c.Path != "" {
		args = append(args, c.Path)
	}
	return args
}

// Format returns the command line for display. It has no effect on how the
// command is executed.
func (c Command) Format(style QuoteStyle) string {
	var b strings.Builder
	b.WriteString(c.Binary)
	if c.Separator != Whitespace {
		b.WriteString(" -F ")
		b.WriteString(style.quote(string(c.Separator)))
	}
	b.WriteString(" ")
	b.WriteString(style.quote(c.Program.String()))
	if c.Path != "" {
		b.WriteString(" ")
		b.WriteString(style.quote(c.Path))
	}
	return b.String()
}
