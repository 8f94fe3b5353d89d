//go:build !s2
// +build !s2

package autodec

import (
	"io"

	"github.com/golang/snappy"
)

// Magic of the snappy framing format: a stream identifier chunk holding
// "sNaPpY".
var snappyMagic = append([]byte{0xff, 0x06, 0x00, 0x00}, "sNaPpY"...)

func init() {
	defaultRegistry.register(Snappy, newSnappyReader, snappyMagic)
}

func newSnappyReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}
