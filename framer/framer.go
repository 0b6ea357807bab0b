package framer

import (
	"fmt"

	"github.com/moffa90/go-cowboy/protocol"
)

// Framer turns command templates into wire frames, validating parameters
// before they are encoded.
//
// Framer is safe for concurrent use after initialization.
type Framer struct {
	config Config
}

// New creates a new Framer with the given options.
//
// Example:
//
//	f := framer.New(framer.WithZap(logger))
//	frame, err := f.EncodeValue(cmd, 300, protocol.Max(1000))
func New(opts ...Option) *Framer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Framer{config: cfg}
}

// Encode packetizes a command that carries no parameter.
func (f *Framer) Encode(cmd protocol.Command) protocol.Frame {
	frame := protocol.Packetize(cmd)

	f.logDebug("encoded command",
		"command", cmd.String(),
		"frame", frame.String(),
	)

	return frame
}

// EncodeValue performs the complete encode sequence for a parameterized command:
//  1. Check value against bounds
//  2. Write value into bytes 7-8 of cmd
//  3. Append the checksum
//
// If the value is out of range no frame is produced. The returned error wraps
// a *protocol.RangeError.
func (f *Framer) EncodeValue(cmd protocol.Command, value uint16, bounds protocol.Bounds) (protocol.Frame, error) {
	header := cmd.Header()

	if err := protocol.Bounded(value, bounds); err != nil {
		f.logError("parameter out of range",
			"command", fmt.Sprintf("%X", header[:]),
			"value", value,
			"min", bounds.Min,
			"max", bounds.Max,
		)
		return protocol.Frame{}, fmt.Errorf("encode %X: %w", header[:], err)
	}

	if value < bounds.Min {
		// The lower bound is reported, not enforced.
		f.logInfo("parameter below declared minimum",
			"command", fmt.Sprintf("%X", header[:]),
			"value", value,
			"min", bounds.Min,
		)
	}

	frame := protocol.Build(cmd, value)

	f.logDebug("encoded command",
		"command", fmt.Sprintf("%X", header[:]),
		"value", value,
		"frame", frame.String(),
	)

	return frame, nil
}

// logDebug logs a debug message if a logger is configured.
func (f *Framer) logDebug(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (f *Framer) logInfo(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (f *Framer) logError(msg string, keysAndValues ...interface{}) {
	if f.config.Logger != nil {
		f.config.Logger.Error(msg, keysAndValues...)
	}
}
