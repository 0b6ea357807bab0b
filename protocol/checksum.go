package protocol

// CalculateChecksum computes the 2-byte checksum of a command template.
// The result is ordered [low, high] as it appears on the wire.
//
// The device uses a modified CRC-16-CCITT taken from the vendor's
// application. Its parameters are:
//   - Initial value: CRC16InitialValue
//   - Polynomial: CRC16ReflectedPolynomial (reflected, LSB first)
//   - No final XOR
func CalculateChecksum(cmd Command) Checksum {
	crc := calculateCRC16(cmd[:])
	return Checksum{byte(crc), byte(crc >> BitsPerByte)}
}

// calculateCRC16 runs the bitwise CRC over data and returns the raw accumulator.
//
// The shift happens before the conditional XOR. Swapping the order produces
// a different checksum that the device rejects without diagnostics.
func calculateCRC16(data []byte) uint16 {
	crc := uint16(CRC16InitialValue)

	for _, b := range data {
		crc ^= uint16(b)
		for i := 0; i < BitsPerByte; i++ {
			lsb := crc & CRC16LowBitMask
			crc >>= 1
			if lsb != 0 {
				crc ^= CRC16ReflectedPolynomial
			}
		}
	}

	return crc
}
