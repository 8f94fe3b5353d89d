//go:build s2
// +build s2

package autodec

import (
	"io"

	"github.com/klauspost/compress/s2"
)

// Magics of the snappy and s2 framing formats. s2 is a superset of snappy
// and its decoder reads both, so under this build tag it serves the two
// signatures.
var (
	snappyMagic = append([]byte{0xff, 0x06, 0x00, 0x00}, "sNaPpY"...)
	s2Magic     = append([]byte{0xff, 0x06, 0x00, 0x00}, "S2sTwO"...)
)

func init() {
	defaultRegistry.register(Snappy, newS2Reader, snappyMagic)
	defaultRegistry.register(S2, newS2Reader, s2Magic)
}

func newS2Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(s2.NewReader(r)), nil
}
