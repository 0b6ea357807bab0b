package protocol

import (
	"errors"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		wantErr bool
	}{
		{name: "exact size", data: []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{name: "nil", data: nil, wantErr: true},
		{name: "too short", data: []byte{1, 2, 3, 4, 5, 6, 7, 8}, wantErr: true},
		{name: "too long", data: make([]byte, FrameSize), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.data)

			if tt.wantErr {
				if !errors.Is(err, ErrCommandLength) {
					t.Fatalf("error = %v, want ErrCommandLength", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for i, b := range tt.data {
				if cmd[i] != b {
					t.Errorf("cmd[%d] = 0x%02X, want 0x%02X", i, cmd[i], b)
				}
			}
		})
	}
}

func TestCommandAccessors(t *testing.T) {
	cmd := Command{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x01, 0x2C}

	if cmd.Value() != 300 {
		t.Errorf("Value() = %d, want 300", cmd.Value())
	}
	if h := cmd.Header(); h != [HeaderSize]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07} {
		t.Errorf("Header() = % X", h[:])
	}
	if cmd.String() != "01020304050607012C" {
		t.Errorf("String() = %q", cmd.String())
	}
}

func TestFrameBytesIsCopy(t *testing.T) {
	frame := Packetize(Command{0x01})
	b := frame.Bytes()
	b[0] = 0xFF

	if frame[0] != 0x01 {
		t.Errorf("frame modified through Bytes(): % X", frame[:])
	}
}

func TestFrameString(t *testing.T) {
	frame := Packetize(Command{})
	if frame.String() != "0000000000000000000AF0" {
		t.Errorf("String() = %q", frame.String())
	}
}
