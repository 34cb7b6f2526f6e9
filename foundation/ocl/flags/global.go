// File: global.go
// Title: Global Options
// Description: Parses the options that follow the final isolated "--"
//              using pflag. Unknown options are ignored.
// Version: v0.1.0
// Created: 2026-09-06
// Modified: 2026-10-15
//
// Change History:
// - 2026-09-06 v0.1.0: Initial implementation
// - 2026-10-15 v0.1.1: Configured defaults for global options

package flags

import (
	"io"

	"github.com/spf13/pflag"

	zderror "github.com/msto63/zunder/foundation/core/error"
)

// DefaultSeparator ends consumption for the current step
const DefaultSeparator = "-"

// GlobalOptions holds the parsed global options
type GlobalOptions struct {
	Help        bool
	Interactive bool
	Trace       bool
	Verbose     bool
	Separator   string
	// Completion is the requested shell; empty when completion was not asked for
	Completion string
}

// ShowCompletion reports whether a completion script was requested
func (o GlobalOptions) ShowCompletion() bool {
	return o.Completion != ""
}

// NewGlobalFlagSet returns the flag set for the global options bound to
// opts. The current values of opts are the defaults.
func NewGlobalFlagSet(opts *GlobalOptions) *pflag.FlagSet {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	fs := pflag.NewFlagSet("global", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SortFlags = false

	fs.BoolVarP(&opts.Help, "help", "h", opts.Help, "show help for the current component")
	fs.BoolVarP(&opts.Interactive, "interactive", "i", opts.Interactive, "enter an interactive session after the command")
	fs.BoolVarP(&opts.Trace, "trace", "t", opts.Trace, "show the trace of the command")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "include private members in help and results")
	fs.StringVar(&opts.Separator, "separator", opts.Separator, "token that ends consumption for the current step")
	fs.StringVar(&opts.Completion, "completion", opts.Completion, "print a completion script for the given shell (bash, fish)")
	fs.Lookup("completion").NoOptDefVal = "bash"
	return fs
}

// ParseGlobalOptions parses global option tokens
func ParseGlobalOptions(tokens []string) (GlobalOptions, error) {
	return ParseGlobalOptionsWith(GlobalOptions{}, tokens)
}

// ParseGlobalOptionsWith parses global option tokens on top of base, so
// configured defaults apply unless a token overrides them
func ParseGlobalOptionsWith(base GlobalOptions, tokens []string) (GlobalOptions, error) {
	opts := base
	fs := NewGlobalFlagSet(&opts)
	if err := fs.Parse(tokens); err != nil {
		return GlobalOptions{}, zderror.Wrap(err, "invalid global option").
			WithCode(zderror.CodeUsage).
			WithOperation("flags.ParseGlobalOptions")
	}
	if opts.Separator == "" {
		return GlobalOptions{}, zderror.New("the separator must not be empty").
			WithCode(zderror.CodeUsage).
			WithOperation("flags.ParseGlobalOptions")
	}
	return opts, nil
}
