package roundtrip

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

func init() {
	RegisterCodec(Gz{})
}

// Gz is the gzip codec: DEFLATE wrapped in the gzip container, whose
// header and CRC-32/length trailer are exercised by every round trip.
type Gz struct{}

func (Gz) Name() string { return "gz" }

func (Gz) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	w, err := gzip.NewWriterLevel(nil, deflateLevel(level))
	if err != nil {
		return nil, err
	}
	return &gzCompressor{w: w}, nil
}

func (Gz) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	}}, nil
}

// gzBound adds the 10-byte header and 8-byte trailer of the gzip
// container to the DEFLATE worst case.
func gzBound(n int) int {
	return deflateBound(n) + 18
}

type gzCompressor struct {
	w *gzip.Writer
}

func (c *gzCompressor) Bound(n int) int { return gzBound(n) }

func (c *gzCompressor) Compress(dst, src []byte) int {
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

func (c *gzCompressor) Close() error { return nil }
