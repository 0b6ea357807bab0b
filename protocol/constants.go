package protocol

// ProtocolName identifies the device protocol implemented by this library.
const ProtocolName = "cowboy"

// Frame layout constants.
const (
	// CommandSize is the size of a command template in bytes
	CommandSize = 9

	// ChecksumSize is the size of the trailing checksum in bytes
	ChecksumSize = 2

	// FrameSize is the size of a complete wire frame:
	// COMMAND(9) + CHECKSUM(2)
	FrameSize = CommandSize + ChecksumSize

	// HeaderSize is the number of opcode/addressing bytes set by the command constructor
	HeaderSize = 7

	// ValueOffset is the offset of the big-endian parameter value (high byte)
	ValueOffset = HeaderSize

	// ValueSize is the size of the parameter value in bytes
	ValueSize = 2
)

// Checksum algorithm constants.
const (
	// CRC16InitialValue is the accumulator seed
	CRC16InitialValue = 0xFFFF

	// CRC16ReflectedPolynomial is the bit-reversed form of 0x8005
	CRC16ReflectedPolynomial = 0xA001

	// CRC16LowBitMask selects the bit shifted out on each iteration
	CRC16LowBitMask = 0x0001

	// BitsPerByte is the number of bits per byte
	BitsPerByte = 8
)
