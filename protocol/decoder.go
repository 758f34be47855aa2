package protocol

import "encoding/binary"

// A Decoder extracts a Command from the head of a command phase payload.
// It returns the number of bytes the command block occupies.
type Decoder interface {
	Decode(p []byte) (cmd Command, n int, err error)
}

// DecoderFunc adapts an ordinary function to the Decoder interface.
type DecoderFunc func(p []byte) (Command, int, error)

// Decode calls f(p).
func (f DecoderFunc) Decode(p []byte) (Command, int, error) {
	return f(p)
}

// DefaultDecoder decodes the standard 16-byte i.MX command block.
var DefaultDecoder Decoder = DecoderFunc(Decode)

// Decode parses a command block produced by Encode. Trailing bytes after
// the first CommandSize bytes are ignored. Unknown command codes are not
// rejected.
func Decode(p []byte) (Command, int, error) {
	if len(p) < CommandSize {
		return Command{}, 0, ErrTruncated
	}

	cmd := Command{
		Kind:    Kind(binary.BigEndian.Uint16(p[0:2])),
		Address: binary.BigEndian.Uint32(p[2:6]),
		Format:  p[6],
		Count:   binary.BigEndian.Uint32(p[7:11]),
		Data:    binary.BigEndian.Uint32(p[11:15]),
	}

	return cmd, CommandSize, nil
}
