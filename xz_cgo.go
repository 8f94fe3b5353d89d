//go:build cgoxz && !noxz
// +build cgoxz,!noxz

package autodec

import (
	"io"

	"github.com/spencercw/go-xz"
)

func init() {
	defaultRegistry.register(XZ, newXZReader, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00})
}

func newXZReader(r io.Reader) (io.ReadCloser, error) {
	xr := xz.NewDecompressionReader(r)
	return makeReadCloser(&xr, func() error { xr.Close(); return nil }), nil
}
