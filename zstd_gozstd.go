//go:build gozstd
// +build gozstd

package autodec

import (
	"io"

	"github.com/valyala/gozstd"
)

func init() {
	defaultRegistry.register(Zstd, newZstdReader, []byte{0x28, 0xb5, 0x2f, 0xfd})
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	zr := gozstd.NewReader(r)
	return makeReadCloser(zr, func() error { zr.Release(); return nil }), nil
}
