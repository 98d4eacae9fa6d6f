package changelog

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-changelog/keycmp"
	"github.com/forestrie/go-changelog/keyfilter"
)

// Options configures a Changelog view.
type Options struct {
	comparator keycmp.Comparator
	log        logger.Logger
	filter     *keyfilter.Filter
}

// Option sets a field of Options.
type Option func(*Options)

// WithComparator sets the key comparator used by lookups. The default is
// keycmp.Bytes.
func WithComparator(c keycmp.Comparator) Option {
	return func(o *Options) {
		o.comparator = c
	}
}

// WithLogger enables debug logging of construction events.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) {
		o.log = log
	}
}

// WithKeyFilter pairs the changelog with a key filter. Appends insert into it
// and lookups for keys it rules out return without scanning.
//
// New resets the filter and FromBytes rebuilds it from the live entries, so a
// filter region may be paired with any changelog buffer.
func WithKeyFilter(f *keyfilter.Filter) Option {
	return func(o *Options) {
		o.filter = f
	}
}

func newOptions(opts ...Option) Options {
	o := Options{comparator: keycmp.Bytes}
	for _, opt := range opts {
		opt(&o)
	}
	if o.comparator == nil {
		o.comparator = keycmp.Bytes
	}
	return o
}
