//go:build !gozstd
// +build !gozstd

package autodec

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

func init() {
	defaultRegistry.register(Zstd, newZstdReader, []byte{0x28, 0xb5, 0x2f, 0xfd})
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return makeReadCloser(zr, func() error { zr.Close(); return nil }), nil
}
