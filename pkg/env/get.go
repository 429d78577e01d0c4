package env

import (
	"github.com/sirupsen/logrus"

	"github.com/platinummonkey/envurl/pkg/literal"
)

// Transform is applied to every value Get returns, including defaults.
type Transform func(any) any

type options struct {
	mapping     Mapping
	defaultVal  any
	required    bool
	transform   Transform
	warn        bool
	warnMessage string
	log         *logrus.Logger
}

// Option configures a Get call
type Option func(*options)

// WithMapping reads from m instead of the process environment
func WithMapping(m Mapping) Option {
	return func(o *options) {
		if m != nil {
			o.mapping = m
		}
	}
}

// WithDefault sets the value returned when the key is absent
func WithDefault(value any) Option {
	return func(o *options) {
		o.defaultVal = value
	}
}

// Required makes an absent key an error
func Required() Option {
	return func(o *options) {
		o.required = true
	}
}

// WithTransform applies fn to the decoded value or the default
func WithTransform(fn Transform) Option {
	return func(o *options) {
		if fn != nil {
			o.transform = fn
		}
	}
}

// Warn logs a warning when the key is absent
func Warn() Option {
	return func(o *options) {
		o.warn = true
	}
}

// WarnWithMessage logs a warning ending in "(message)" when the key is absent
func WarnWithMessage(message string) Option {
	return func(o *options) {
		o.warn = true
		o.warnMessage = message
	}
}

// WithLogger sets the logger used for warnings and fatal exits
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func identity(v any) any {
	return v
}

func newOptions(opts []Option) *options {
	o := &options{
		mapping:   OS(),
		transform: identity,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Get reads key from the mapping and decodes it as a literal. Values that
// are not literals are returned as the raw string. When the key is absent,
// Get returns the default, or a *MissingKeyError if the key is required.
func Get(key string, opts ...Option) (any, error) {
	o := newOptions(opts)
	return o.get(key)
}

func (o *options) get(key string) (any, error) {
	if raw, ok := o.mapping.Lookup(key); ok {
		return o.transform(literal.DecodeOrRaw(raw)), nil
	}

	if o.warn {
		if o.warnMessage != "" {
			o.log.Warnf("Key '%s' not available in environment (%s)", key, o.warnMessage)
		} else {
			o.log.Warnf("Key '%s' not available in environment", key)
		}
	}

	if o.required {
		return nil, &MissingKeyError{Key: key}
	}

	return o.transform(o.defaultVal), nil
}

// MustGet is Get with a fail-fast policy: a missing required key logs
// "Exiting: Required key 'KEY' missing" at fatal level, which terminates the
// process through the logger's exit function.
func MustGet(key string, opts ...Option) any {
	o := newOptions(opts)

	value, err := o.get(key)
	if err != nil {
		o.log.Fatalf("Exiting: %v", err)
		return nil
	}
	return value
}
