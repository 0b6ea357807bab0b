// Package framer provides a higher-level API for encoding Cowboy device commands.
//
// # Overview
//
// A Framer runs the encode sequence for one command:
//   - Validating the parameter against the command's declared bounds
//   - Writing the parameter into the command template
//   - Appending the device checksum
//
// Out-of-range parameters never reach the wire: EncodeValue returns an error
// and the zero frame instead.
//
// # Basic Usage
//
//	f := framer.New()
//
//	cmd := protocol.Command{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
//	frame, err := f.EncodeValue(cmd, 300, protocol.Max(1000))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port.Write(frame.Bytes())
//
// # Logging
//
// Logging is disabled unless a logger is configured:
//
//	logger, _ := zap.NewProduction()
//	f := framer.New(framer.WithZap(logger))
//
// Any type implementing Logger can be used with WithLogger.
//
// # Hardware Independence
//
// This package does NOT implement serial communication. Frames are returned
// to the caller, who writes them to whatever transport reaches the device.
package framer
