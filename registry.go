package autodec

import (
	"bytes"
	"io"
	"sort"
)

// decoderFunc wraps r, a reader over compressed data, with the decoder of
// one specific format. The returned stream decompresses lazily, as bytes
// are pulled from it.
type decoderFunc func(r io.Reader) (io.ReadCloser, error)

// A signature associates a compression format with one of its magic byte
// prefixes. Formats may declare several signatures (e.g. zlib, for which
// the byte after 0x78 depends on the compression level).
type signature struct {
	format Format
	magic  []byte
}

// A registry holds the magic signatures of a set of compression formats,
// sorted by detection priority, plus the decoder constructor for each
// format. It is immutable once built and safe for concurrent lookups.
type registry struct {
	sigs     []signature
	decoders map[Format]decoderFunc
}

// defaultRegistry holds the formats compiled into this build. Each format
// registers itself from an init function in its own file; build tags on
// those files decide the enabled set and the decoder implementations.
var defaultRegistry = &registry{decoders: make(map[Format]decoderFunc)}

// register adds a format with its decoder constructor and magic prefixes.
// Signatures are kept stable-sorted by Format value so that detection
// priority follows the declaration order of the Format constants, whatever
// the order init functions run in.
func (reg *registry) register(f Format, dec decoderFunc, magics ...[]byte) {
	for _, m := range magics {
		reg.sigs = append(reg.sigs, signature{format: f, magic: m})
	}
	sort.SliceStable(reg.sigs, func(i, j int) bool {
		return reg.sigs[i].format < reg.sigs[j].format
	})
	reg.decoders[f] = dec
}

// window returns the number of leading bytes needed to decide on any of the
// registered signatures, that is the length of the longest magic.
func (reg *registry) window() int {
	w := 0
	for _, sig := range reg.sigs {
		if len(sig.magic) > w {
			w = len(sig.magic)
		}
	}
	return w
}

// match reports the format of the first signature, in priority order, whose
// magic is a prefix of prefix, or Raw if none matches. final indicates that
// prefix is all there is (the source hit EOF or the lookahead window is
// full). While final is false, match refuses to commit as long as a
// signature of higher priority than any current match could still be
// completed by more bytes: in that case it returns decided == false, and
// the caller must collect more bytes and ask again.
func (reg *registry) match(prefix []byte, final bool) (f Format, decided bool) {
	for _, sig := range reg.sigs {
		if bytes.HasPrefix(prefix, sig.magic) {
			return sig.format, true
		}
		if !final && len(prefix) < len(sig.magic) && bytes.HasPrefix(sig.magic, prefix) {
			return Raw, false
		}
	}
	return Raw, true
}

// Detect is the pure detection half of NewReader: it matches prefix, the
// leading bytes of a stream, against the magic signatures of the formats
// enabled in this build. final must be true when prefix is the whole
// stream, or when it already holds Window() bytes.
//
// When decided is false, prefix is consistent with the beginning of some
// signature but too short to confirm it: collect more bytes and call Detect
// again. Raw with decided == true means no enabled format matches.
func Detect(prefix []byte, final bool) (f Format, decided bool) {
	return defaultRegistry.match(prefix, final)
}

// Window returns the maximum number of leading bytes Detect needs to
// always reach a decision.
func Window() int {
	return defaultRegistry.window()
}
