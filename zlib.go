package roundtrip

import (
	"io"

	"github.com/klauspost/compress/zlib"
)

func init() {
	RegisterCodec(Zlib{})
}

// Zlib is the zlib codec: DEFLATE in the zlib container with its
// Adler-32 trailer.
type Zlib struct{}

func (Zlib) Name() string { return "zlib" }

func (Zlib) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	w, err := zlib.NewWriterLevel(nil, deflateLevel(level))
	if err != nil {
		return nil, err
	}
	return &zlibCompressor{w: w}, nil
}

func (Zlib) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return zlib.NewReader(r)
	}}, nil
}

// zlibBound adds the 2-byte header and 4-byte Adler-32 trailer.
func zlibBound(n int) int {
	return deflateBound(n) + 6
}

type zlibCompressor struct {
	w *zlib.Writer
}

func (c *zlibCompressor) Bound(n int) int { return zlibBound(n) }

func (c *zlibCompressor) Compress(dst, src []byte) int {
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

func (c *zlibCompressor) Close() error { return nil }
