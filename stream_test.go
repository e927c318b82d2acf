package roundtrip

import (
	"bytes"
	"testing"
)

func TestCapWriter(t *testing.T) {
	cw := &capWriter{buf: make([]byte, 4)}

	n, err := cw.Write([]byte("ab"))
	checkErr(t, err, "writing within capacity")
	if n != 2 || cw.n != 2 {
		t.Fatalf("n=%d cw.n=%d, want 2 and 2", n, cw.n)
	}

	// An overflowing write is rejected whole.
	if _, err := cw.Write([]byte("cde")); err == nil {
		t.Fatal("overflowing write succeeded")
	}
	if cw.n != 2 {
		t.Fatalf("rejected write advanced the cursor to %d", cw.n)
	}

	_, err = cw.Write([]byte("cd"))
	checkErr(t, err, "filling to capacity")
	if !bytes.Equal(cw.buf, []byte("abcd")) {
		t.Fatalf("buffer = %q, want %q", cw.buf, "abcd")
	}
}

func TestGzRejectsTrailingGarbage(t *testing.T) {
	// Raw DEFLATE tolerates bytes past the final block, but a container
	// with a trailer must not.
	payload := []byte("stream with a strict tail")

	comp, err := Gz{}.NewCompressor(6)
	checkErr(t, err, "allocating compressor")
	defer comp.Close()

	dst := make([]byte, comp.Bound(len(payload)))
	csize := comp.Compress(dst, payload)
	if csize == 0 {
		t.Fatal("compression failed with a bound-sized buffer")
	}

	decomp, err := Gz{}.NewDecompressor()
	checkErr(t, err, "allocating decompressor")
	defer decomp.Close()

	recovered := make([]byte, len(payload))
	checkErr(t, decomp.Decompress(recovered, dst[:csize]), "decompressing clean stream")
	if !bytes.Equal(recovered, payload) {
		t.Fatal("recovered bytes differ")
	}

	// The same stream with a byte appended must not decode cleanly.
	tainted := append(append([]byte{}, dst[:csize]...), 0xff)
	if err := decomp.Decompress(recovered, tainted); err == nil {
		t.Fatal("trailing garbage accepted")
	}
}
