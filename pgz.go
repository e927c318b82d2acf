package roundtrip

import (
	"io"

	"github.com/klauspost/pgzip"
)

func init() {
	RegisterCodec(Pgz{})
}

// Pgz is the parallel gzip codec. It produces standard gzip streams but
// compresses independent blocks concurrently, so its worst case carries
// extra per-block framing.
type Pgz struct{}

func (Pgz) Name() string { return "pgz" }

func (Pgz) NewCompressor(level int) (Compressor, error) {
	if err := levelInRange(level); err != nil {
		return nil, err
	}
	lvl := deflateLevel(level)
	// Probe the level once so an unsupported one fails at allocation
	// time, matching the contract that Compress itself cannot error.
	probe, err := pgzip.NewWriterLevel(io.Discard, lvl)
	if err != nil {
		return nil, err
	}
	probe.Close()
	return &streamCompressor{
		bound: pgzBound,
		open: func(w io.Writer) (io.WriteCloser, error) {
			return pgzip.NewWriterLevel(w, lvl)
		},
	}, nil
}

func (Pgz) NewDecompressor() (Decompressor, error) {
	return &streamDecompressor{open: func(r io.Reader) (io.ReadCloser, error) {
		return pgzip.NewReader(r)
	}}, nil
}

// pgzBound extends the gzip worst case with slack for the sync markers
// pgzip emits between its 1 MiB compression blocks.
func pgzBound(n int) int {
	return gzBound(n) + 16*(n/(1<<20)+1)
}
