package gateway

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// ErrNoCutSequence is returned when no sequence of cuts keeps the virus away
// from every gateway.
var ErrNoCutSequence = errors.New("gateway: no cut sequence isolates the virus")

// DefaultStart is the node the virus starts on.
const DefaultStart = "a"

// Cut is a single gateway link removal.
type Cut struct {
	Gateway string
	Node    string
}

// String renders the cut as "Gateway-node".
func (c Cut) String() string { return c.Gateway + "-" + c.Node }

// keeps reports whether the link u-v survives c. A nil cut keeps everything.
func (c *Cut) keeps(u, v string) bool {
	if c == nil {
		return true
	}

	return !(u == c.Gateway && v == c.Node) && !(u == c.Node && v == c.Gateway)
}

// Options configures Solve.
type Options struct {
	// Start is the virus's initial node.
	Start string
	// Logger receives Debug-level search events.
	Logger logrus.FieldLogger
	// Ctx cancels a long search.
	Ctx context.Context
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions starts the virus at DefaultStart and discards logs.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{Start: DefaultStart, Logger: l, Ctx: context.Background()}
}

// WithStart moves the virus's initial node. Empty IDs are ignored.
func WithStart(id string) Option {
	return func(o *Options) {
		if id != "" {
			o.Start = id
		}
	}
}

// WithLogger routes search events to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext lets ctx abort Solve, which then returns ctx.Err(). A nil ctx
// is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
