package address

import (
	"github.com/traittech/trait-keyless/compliance"
	"github.com/traittech/trait-keyless/ss58"
)

// Option configures text-address encoding and decoding.
//
// The defaults are the Trait Asset Hub network format (5335) and
// compliance.Permissive.
type Option func(*options)

type options struct {
	format uint16
	mode   compliance.Mode
}

func buildOptions(opts []Option) options {
	o := options{format: ss58.FormatTraitAssetHub, mode: compliance.Permissive}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithFormat selects the SS58 network format.
func WithFormat(format uint16) Option {
	return func(o *options) { o.format = format }
}

// WithCompliance selects how strictly text input is parsed.
func WithCompliance(mode compliance.Mode) Option {
	return func(o *options) { o.mode = mode }
}
