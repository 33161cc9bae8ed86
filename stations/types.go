// SPDX-License-Identifier: MIT

package stations

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

var (
	// ErrMalformed marks a station file with one or more invalid lines.
	ErrMalformed = errors.New("stations: malformed input")

	// ErrUnencodable is returned by Write for a station name the format
	// cannot represent (not starting with a letter, or spanning lines).
	ErrUnencodable = errors.New("stations: name cannot be encoded")
)

// commentPrefix starts a line the loader skips.
const commentPrefix = "#"

// maxLineBytes bounds a single line of input.
const maxLineBytes = 1 << 20

// Option customizes Load and Parse.
type Option func(*options)

type options struct {
	logger    *logrus.Entry
	graphName string
}

func newOptions(opts ...Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return o
}

// WithLogger sets the entry the loader logs through.
func WithLogger(l *logrus.Entry) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGraphName names the resulting graph. Load defaults to the file's base
// name without extension.
func WithGraphName(name string) Option {
	return func(o *options) {
		o.graphName = name
	}
}
