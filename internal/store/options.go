package store

import (
	"log/slog"

	"dearchive/internal/archive"
	"dearchive/internal/logging"
)

// Option adjusts how a store operation writes and logs.
type Option func(*options)

type options struct {
	logger *slog.Logger
	indent int
}

// WithLogger routes store logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithIndent sets the number of spaces used to indent written documents.
// Zero writes compact JSON.
func WithIndent(indent int) Option {
	return func(o *options) {
		if indent >= 0 {
			o.indent = indent
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		logger: logging.NewNop(),
		indent: archive.DefaultIndent,
	}
	for _, opt := range opts {
		opt(&o)
	}
	o.logger = logging.NewComponentLogger(o.logger, "store")
	return o
}
