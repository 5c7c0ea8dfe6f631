// Package codec implements C5 (encoder) and C6 (decoder): turning a
// registered Go value into a fingerprinted byte payload and back, plus
// the exact-size calculation C5's allocation strategy depends on.
package codec

import (
	"github.com/kagelund/serialcore/internal/options"
	"github.com/kagelund/serialcore/wire"
)

// Config holds the per-call knobs shared by Serialize and Parse: only the
// storage byte order today (spec §6 "byte-container contract"), kept as
// its own struct so more options (custom registry, buffer hints) can be
// added without changing every call site's signature.
type Config struct {
	engine wire.EndianEngine
}

func defaultConfig() *Config {
	return &Config{engine: wire.GetNativeEndianEngine()}
}

// Option configures a Serialize or Parse call.
type Option = options.Option[*Config]

// WithEngine selects an arbitrary storage byte order.
func WithEngine(e wire.EndianEngine) Option {
	return options.NoError[*Config](func(c *Config) { c.engine = e })
}

// WithLittleEndian forces little-endian storage order.
func WithLittleEndian() Option { return WithEngine(wire.GetLittleEndianEngine()) }

// WithBigEndian forces big-endian storage order.
func WithBigEndian() Option { return WithEngine(wire.GetBigEndianEngine()) }

// WithNativeEndian forces the host's native storage order. This is also
// the default when no option is given.
func WithNativeEndian() Option { return WithEngine(wire.GetNativeEndianEngine()) }

func buildConfig(opts []Option) (*Config, error) {
	c := defaultConfig()
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// EngineFromOptions resolves the storage byte order a set of options
// would configure, for callers (like trace.Trace) that need an engine
// without otherwise going through Serialize/Parse.
func EngineFromOptions(opts ...Option) (wire.EndianEngine, error) {
	c, err := buildConfig(opts)
	if err != nil {
		return nil, err
	}

	return c.engine, nil
}
