package roundtrip

import (
	"math/rand"
	"testing"
)

func addSeeds(f *testing.F) {
	r := rand.New(rand.NewSource(3))
	big := make([]byte, 1000)
	r.Read(big)

	f.Add([]byte{})
	f.Add([]byte{0x01})
	f.Add([]byte{0x00, 0x00})
	f.Add(append([]byte{13, 1}, big...))
	f.Add(append([]byte{6, 0}, make([]byte, 50)...))
	f.Add(append([]byte{25, 1}, []byte("the quick brown fox jumps over the lazy dog")...))
}

// FuzzDeflate is the primary harness: the raw DEFLATE codec under both
// buffer-sizing policies, steered by the first two input bytes.
func FuzzDeflate(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		if _, err := Check(Deflate{}, data); err != nil {
			t.Fatal(err)
		}
	})
}

// FuzzCodecs runs every registered codec over the same input. Inputs are
// capped so the slow codecs don't starve the mutation loop.
func FuzzCodecs(f *testing.F) {
	addSeeds(f)

	var all []Codec
	for _, name := range Names() {
		codec, err := ByName(name)
		if err != nil {
			f.Fatal(err)
		}
		all = append(all, codec)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<14 {
			return
		}
		for _, codec := range all {
			if _, err := Check(codec, data); err != nil {
				t.Fatal(err)
			}
		}
	})
}
