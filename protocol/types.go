package protocol

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
)

// Command is a command template: the 9-byte buffer describing one device
// instruction before its checksum is appended.
//
// Layout:
//
//	[OPCODE/ADDRESS(7)][VALUE_H][VALUE_L]
type Command [CommandSize]byte

// ParseCommand converts a byte slice into a Command.
// The slice must be exactly CommandSize bytes long.
func ParseCommand(b []byte) (Command, error) {
	var cmd Command
	if len(b) != CommandSize {
		return cmd, fmt.Errorf("%w: got %d bytes, expected %d", ErrCommandLength, len(b), CommandSize)
	}
	copy(cmd[:], b)
	return cmd, nil
}

// Header returns the opcode/addressing bytes of the command.
func (c Command) Header() [HeaderSize]byte {
	var h [HeaderSize]byte
	copy(h[:], c[:HeaderSize])
	return h
}

// Value returns the big-endian parameter value stored in bytes 7-8.
func (c Command) Value() uint16 {
	return binary.BigEndian.Uint16(c[ValueOffset : ValueOffset+ValueSize])
}

func (c Command) String() string {
	return strings.ToUpper(hex.EncodeToString(c[:]))
}

// Checksum is the 2-byte frame checksum ordered [low, high].
type Checksum [ChecksumSize]byte

// Uint16 returns the checksum as the accumulator value it was taken from.
func (c Checksum) Uint16() uint16 {
	return binary.LittleEndian.Uint16(c[:])
}

// Frame is a complete wire frame, ready to hand to a transport.
//
// Layout:
//
//	[COMMAND(9)][CHECKSUM_L][CHECKSUM_H]
type Frame [FrameSize]byte

// Bytes returns a copy of the frame as a slice, suitable for io.Writer.
func (f Frame) Bytes() []byte {
	b := make([]byte, FrameSize)
	copy(b, f[:])
	return b
}

// Command returns the command template portion of the frame.
func (f Frame) Command() Command {
	var cmd Command
	copy(cmd[:], f[:CommandSize])
	return cmd
}

// Checksum returns the trailing checksum of the frame.
func (f Frame) Checksum() Checksum {
	return Checksum{f[CommandSize], f[CommandSize+1]}
}

func (f Frame) String() string {
	return strings.ToUpper(hex.EncodeToString(f[:]))
}

// Bounds is the inclusive range a command constructor accepts for a field.
type Bounds struct {
	// Min is the lowest accepted value. It is reported in errors but not enforced.
	Min uint16

	// Max is the highest accepted value (inclusive)
	Max uint16
}

// Max returns Bounds with Min defaulted to zero.
func Max(max uint16) Bounds {
	return Bounds{Max: max}
}

// Range returns Bounds covering [min, max].
func Range(min, max uint16) Bounds {
	return Bounds{Min: min, Max: max}
}
