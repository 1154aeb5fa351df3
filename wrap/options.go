package wrap

import "github.com/sirupsen/logrus"

type options struct {
	log   logrus.FieldLogger
	debug bool
}

// Option configures a Box at construction.
type Option func(*options)

// WithLogger sends the box's diagnostics to log instead of the logrus
// standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithDebug starts the box with the Get/Set trace enabled.
func WithDebug() Option {
	return func(o *options) {
		o.debug = true
	}
}
