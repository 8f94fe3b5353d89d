package autodec

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

func init() {
	// 0x78 is the CMF byte of a 32K-window deflate stream, the byte after
	// it depends on the compression level.
	defaultRegistry.register(Zlib, newZlibReader,
		[]byte{0x78, 0x01},
		[]byte{0x78, 0x5e},
		[]byte{0x78, 0x9c},
		[]byte{0x78, 0xda},
	)
}

func newZlibReader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}
