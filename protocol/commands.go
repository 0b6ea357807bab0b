package protocol

// WriteValue returns a copy of cmd with value written big-endian into bytes 7-8.
// All other bytes pass through unchanged.
//
// The value is not range checked; run it through Bounded first.
func WriteValue(cmd Command, value uint16) Command {
	cmd[ValueOffset] = byte(value >> BitsPerByte)
	cmd[ValueOffset+1] = byte(value)
	return cmd
}

// Packetize appends the checksum of cmd and returns the frame ready for transmission.
//
// Frame structure:
//
//	[CMD(9)][CHECKSUM_L][CHECKSUM_H]
func Packetize(cmd Command) Frame {
	var frame Frame
	copy(frame[:CommandSize], cmd[:])

	checksum := CalculateChecksum(cmd)
	frame[CommandSize] = checksum[0]
	frame[CommandSize+1] = checksum[1]

	return frame
}

// Build writes value into cmd and packetizes the result.
func Build(cmd Command, value uint16) Frame {
	return Packetize(WriteValue(cmd, value))
}

// BuildChecked validates value against b before building the frame.
// On a range failure no frame is produced: the zero Frame is returned with the error.
func BuildChecked(cmd Command, value uint16, b Bounds) (Frame, error) {
	if err := Bounded(value, b); err != nil {
		return Frame{}, err
	}
	return Build(cmd, value), nil
}
