package roundtrip

import (
	"io"

	"github.com/klauspost/compress/flate"
)

func init() {
	RegisterCodec(Deflate{})
}

// Deflate is the raw DEFLATE codec, with no container around the
// compressed stream. It is the default codec of cmd/roundtrip.
type Deflate struct{}

func (Deflate) Name() string { return "deflate" }

func (Deflate) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	w, err := flate.NewWriter(nil, deflateLevel(level))
	if err != nil {
		return nil, err
	}
	return &deflateCompressor{w: w}, nil
}

func (Deflate) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return flate.NewReader(r), nil
	}}, nil
}

// deflateLevel maps the harness level knob onto flate's native range.
// 0 selects stored blocks; levels past BestCompression clamp to it.
func deflateLevel(level int) int {
	if level > flate.BestCompression {
		return flate.BestCompression
	}
	return level
}

// deflateBound is the worst case for a DEFLATE stream: every block
// stored, 5 bytes of overhead per block, plus slack for the final sync
// marker. The 8 KiB block length understates what the encoder actually
// packs into a stored block, which keeps the bound conservative.
func deflateBound(n int) int {
	return n + 5*(n/8192+1) + 16
}

// deflateCompressor reuses one flate.Writer across Compress calls,
// resetting it onto the destination each time.
type deflateCompressor struct {
	w *flate.Writer
}

func (c *deflateCompressor) Bound(n int) int { return deflateBound(n) }

func (c *deflateCompressor) Compress(dst, src []byte) int {
	cw := &capWriter{buf: dst}
	c.w.Reset(cw)
	if _, err := c.w.Write(src); err != nil {
		return 0
	}
	if err := c.w.Close(); err != nil {
		return 0
	}
	return cw.n
}

func (c *deflateCompressor) Close() error { return nil }
