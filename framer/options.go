package framer

import "go.uber.org/zap"

// Config holds the framer configuration.
type Config struct {
	// Logger is used for logging encode operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{}
}

// Option is a functional option for configuring the Framer.
type Option func(*Config)

// WithLogger sets a logger for encode operations.
//
// Example:
//
//	f := framer.New(framer.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithZap logs through a zap logger.
// A nil logger leaves logging disabled.
//
// Example:
//
//	logger, _ := zap.NewProduction()
//	f := framer.New(framer.WithZap(logger))
func WithZap(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = NewZapLogger(logger.Named("cowboy"))
		}
	}
}
