package autodec

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
)

// NewReader returns an io.ReadCloser that reads from r, whether r is a
// reader over compressed data or not. The compression format is determined
// by looking at the leading magic bytes; if they are not recognized, or too
// few bytes can be read to recognize anything, the original bytes are
// forwarded untouched.
//
// NewReader reads at most Window() bytes from r before deciding. Those
// bytes are not lost: they are replayed in front of the remaining data, so
// that reading the returned stream to completion always consumes r exactly
// once, in full.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	hdr := make([]byte, defaultRegistry.window())
	n, err := io.ReadFull(r, hdr)
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		// Short stream, n bytes is all there is to look at.
	case err != nil:
		return nil, fmt.Errorf("autodec: can't read: %v", err)
	}

	format, _ := defaultRegistry.match(hdr[:n], true)
	return decodeReader(&replayReader{r: r, hdr: hdr[:n]}, format)
}

// NewReaderFormat is like NewReader but skips detection and decodes r
// assuming the given format. If format is Raw, or is not enabled in this
// build, the data in r is forwarded untouched.
func NewReaderFormat(r io.Reader, format Format) (io.ReadCloser, error) {
	return decodeReader(r, format)
}

func decodeReader(r io.Reader, format Format) (io.ReadCloser, error) {
	dec := defaultRegistry.decoders[format]
	if dec == nil {
		log.WithField("format", format).Debug("no decompression")
		if rc, ok := r.(io.ReadCloser); ok {
			return rc, nil
		}
		return io.NopCloser(r), nil
	}

	log.WithField("format", format).Debug("decompressing")
	rc, err := dec(r)
	if err != nil {
		return nil, fmt.Errorf("autodec (%s): can't read: %v", format, err)
	}
	return rc, nil
}

// replayReader yields the already read header bytes first, then forwards
// subsequent reads to the wrapped reader. It is what makes detection a
// lookahead instead of a consumption: no byte is read twice from the
// underlying source and none is dropped.
type replayReader struct {
	r    io.Reader
	hdr  []byte
	hoff int // read header bytes
}

func (r *replayReader) Read(p []byte) (int, error) {
	if r.hoff < len(r.hdr) {
		n := copy(p, r.hdr[r.hoff:])
		r.hoff += n
		return n, nil
	}
	return r.r.Read(p)
}

// makeReadCloser converts an io.Reader and a close function into a ReadCloser.
func makeReadCloser(r io.Reader, close func() error) io.ReadCloser {
	return &readCloser{Reader: r, close: close}
}

type readCloser struct {
	io.Reader
	close func() error
}

func (rc *readCloser) Close() error {
	err := rc.close()
	if err != nil {
		return fmt.Errorf("autodec: close: %v", err)
	}
	return nil
}
