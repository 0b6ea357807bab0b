// Package protocol implements the framing layer of the Cowboy serial control protocol.
//
// This package provides functions to turn a command template and a 16-bit parameter
// into the byte frame the device accepts. It is encode-only; replies are not parsed here.
//
// # Protocol Overview
//
// Every command is a fixed-size frame:
//
//	Frame: [OPCODE/ADDRESS(7)][VALUE_H][VALUE_L][CHECKSUM_L][CHECKSUM_H]
//
// Where:
//   - OPCODE/ADDRESS = command-specific bytes, defined by the device command catalog
//   - VALUE = 16-bit parameter (big-endian)
//   - CHECKSUM = 16-bit modified CRC-16 over the first 9 bytes (little-endian)
//
// There are no start/end markers, length prefixes, or escaping.
//
// # Building Frames
//
// A command constructor validates its parameter, writes it into the template,
// and packetizes the result:
//
//	func SetSpeed(rpm uint16) (protocol.Frame, error) {
//	    if err := protocol.BoundedMax(rpm, 3000); err != nil {
//	        return protocol.Frame{}, err
//	    }
//	    cmd := protocol.Command{0x01, 0x10, 0x00, 0x00, 0x00, 0x00, 0x02}
//	    return protocol.Packetize(protocol.WriteValue(cmd, rpm)), nil
//	}
//
// Commands without a parameter go straight to Packetize. Build and BuildChecked
// combine the steps.
//
// # Checksum
//
// CalculateChecksum reproduces the device's checksum bit for bit:
// initial value 0xFFFF, reflected polynomial 0xA001, no final XOR,
// emitted low byte first.
//
// # Error Handling
//
// The range guard returns a *RangeError carrying the declared bounds:
//
//	if protocol.IsRangeError(err) {
//	    // err.Error() returns: "invalid range: value must be within 0-3000"
//	}
//
// WriteValue, CalculateChecksum and Packetize cannot fail.
//
// All functions are pure and safe for concurrent use.
package protocol
