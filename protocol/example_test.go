package protocol_test

import (
	"errors"
	"fmt"

	"github.com/moffa90/go-cowboy/protocol"
)

// setBrightness is a command constructor as a device catalog would write it.
func setBrightness(level uint16) (protocol.Frame, error) {
	if err := protocol.BoundedMax(level, 100); err != nil {
		return protocol.Frame{}, err
	}
	cmd := protocol.Command{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	return protocol.Packetize(protocol.WriteValue(cmd, level)), nil
}

func Example() {
	frame, err := setBrightness(80)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("% X\n", frame.Bytes())

	_, err = setBrightness(101)
	var re *protocol.RangeError
	if errors.As(err, &re) {
		fmt.Println(re.Start, re.End)
	}
	// Output:
	// 01 02 03 04 05 06 07 00 50 C9 48
	// 0 100
}

func ExampleCalculateChecksum() {
	cmd := protocol.Command{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x01, 0x2C}
	cs := protocol.CalculateChecksum(cmd)
	fmt.Printf("% X\n", cs[:])
	// Output: C9 39
}

func ExampleWriteValue() {
	cmd := protocol.WriteValue(protocol.Command{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}, 300)
	fmt.Println(cmd)
	// Output: 01020304050607012C
}

func ExampleBounded() {
	fmt.Println(protocol.Bounded(21, protocol.Range(10, 20)))
	fmt.Println(protocol.Bounded(5, protocol.Range(10, 20)))
	// Output:
	// invalid range: value must be within 10-20
	// <nil>
}
