package fuzz

import (
	"slices"

	"github.com/standardbeagle/fuzzymatch/internal/errors"
)

// Options are the preprocessing flags bound into a named scorer.
type Options struct {
	ForceASCII  bool
	FullProcess bool
}

// DefaultOptions full-process with ASCII forcing, as WRatio does by default.
var DefaultOptions = Options{ForceASCII: true, FullProcess: true}

// Scorer names accepted by ScorerByName.
const (
	NameRatio                 = "ratio"
	NamePartialRatio          = "partial_ratio"
	NameTokenSortRatio        = "token_sort_ratio"
	NameTokenSetRatio         = "token_set_ratio"
	NamePartialTokenSortRatio = "partial_token_sort_ratio"
	NamePartialTokenSetRatio  = "partial_token_set_ratio"
	NameQRatio                = "qratio"
	NameUQRatio               = "uqratio"
	NameWRatio                = "wratio"
	NameUWRatio               = "uwratio"
)

var registry = map[string]func(opts Options) func(a, b string) int{
	NameRatio:        func(Options) func(a, b string) int { return Ratio },
	NamePartialRatio: func(Options) func(a, b string) int { return PartialRatio },
	NameTokenSortRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return TokenSortRatio(a, b, o.ForceASCII, o.FullProcess) }
	},
	NameTokenSetRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return TokenSetRatio(a, b, o.ForceASCII, o.FullProcess) }
	},
	NamePartialTokenSortRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return PartialTokenSortRatio(a, b, o.ForceASCII, o.FullProcess) }
	},
	NamePartialTokenSetRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return PartialTokenSetRatio(a, b, o.ForceASCII, o.FullProcess) }
	},
	// QRatio always full-processes
	NameQRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return QRatio(a, b, o.ForceASCII) }
	},
	NameUQRatio: func(Options) func(a, b string) int { return UQRatio },
	NameWRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return WRatio(a, b, o.ForceASCII, o.FullProcess) }
	},
	NameUWRatio: func(o Options) func(a, b string) int {
		return func(a, b string) int { return UWRatio(a, b, o.FullProcess) }
	},
}

// ScorerByName returns the named scorer with DefaultOptions.
func ScorerByName(name string) (func(a, b string) int, error) {
	return ScorerWithOptions(name, DefaultOptions)
}

// ScorerWithOptions returns the named scorer with its flags bound to
// opts. Ratio and PartialRatio take no flags and ignore opts.
func ScorerWithOptions(name string, opts Options) (func(a, b string) int, error) {
	build, ok := registry[name]
	if !ok {
		return nil, errors.NewScorerError(name)
	}
	return build(opts), nil
}

// ScorerNames lists the registered scorer names in sorted order.
func ScorerNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
