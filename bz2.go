package roundtrip

import (
	"io"

	"github.com/dsnet/compress/bzip2"
)

func init() {
	RegisterCodec(Bz2{})
}

// Bz2 is the bzip2 codec. Levels map onto bzip2's 1-9 block-size range.
type Bz2 struct{}

func (Bz2) Name() string { return "bz2" }

func (Bz2) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	lvl := level
	if lvl < bzip2.BestSpeed {
		lvl = bzip2.BestSpeed
	}
	if lvl > bzip2.BestCompression {
		lvl = bzip2.BestCompression
	}
	return &streamCompressor{
		bound: bz2Bound,
		open: func(w io.Writer) (io.WriteCloser, error) {
			return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: lvl})
		},
	}, nil
}

func (Bz2) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return bzip2.NewReader(r, nil)
	}}, nil
}

// bz2Bound: bzip2 has no stored-block fallback, and its run-length
// preprocessing can expand runs of four identical bytes by a quarter, so
// the bound carries a third of the input as headroom plus a fixed
// allowance for headers and Huffman tables.
func bz2Bound(n int) int {
	return n + n/3 + 1024
}
