package roundtrip

// Levels accepted by every codec. Each codec maps this knob onto its
// native range; 0 is the fastest setting and MaxLevel the most thorough.
// Codecs without a level knob accept and ignore it.
const (
	MinLevel = 0
	MaxLevel = 12
)

// Codec is a compression format that can mint independent compressor and
// decompressor handles. Implementations must be safe to copy; all mutable
// state lives in the handles.
type Codec interface {
	// Name returns the name of the codec.
	Name() string

	// NewCompressor returns a compressor configured for level.
	// It fails only on an out-of-range level or resource exhaustion,
	// never as a statement about any particular input.
	NewCompressor(level int) (Compressor, error)

	// NewDecompressor returns a decompressor for this codec's format.
	NewDecompressor() (Decompressor, error)
}

// Compressor is a compression handle. It may be used for any number of
// Compress calls before Close.
type Compressor interface {
	// Bound returns a capacity guaranteed to hold the compressed form
	// of any n-byte input at this handle's configured level.
	Bound(n int) int

	// Compress compresses src into dst and returns the number of bytes
	// written. A return of 0 means the output did not fit in dst; no
	// other failure mode exists. Compress never writes past len(dst).
	Compress(dst, src []byte) int

	// Close releases the handle. Called exactly once.
	Close() error
}

// Decompressor is a decompression handle.
type Decompressor interface {
	// Decompress expands src into dst, which must be sized to the exact
	// expected output length. It returns an error if src is not a valid
	// stream, or if the decoded output is not exactly len(dst) bytes.
	Decompress(dst, src []byte) error

	// Close releases the handle. Called exactly once.
	Close() error
}
