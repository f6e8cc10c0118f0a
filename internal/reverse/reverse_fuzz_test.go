package reverse_test

import (
	"bytes"
	"testing"

	"github.com/BoostyLabs/txcore/internal/reverse"
)

func FuzzReverse(f *testing.F) {
	f.Add([]byte("some_data_here"))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, orig []byte) {
		snapshot := append([]byte(nil), orig...)

		rev := reverse.Bytes(orig)
		if !bytes.Equal(orig, snapshot) {
			t.Errorf("Bytes mutated the source: %x", orig)
		}

		doubleRev := reverse.Bytes(rev)
		if !bytes.Equal(orig, doubleRev) {
			t.Errorf("Before: %x, after: %x", orig, doubleRev)
		}

		inPlace := reverse.InPlace(append([]byte(nil), orig...))
		if !bytes.Equal(rev, inPlace) {
			t.Errorf("Bytes: %x, InPlace: %x", rev, inPlace)
		}

		decoded, err := reverse.Hex(reverse.ToHex(orig))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(orig, decoded) {
			t.Errorf("Hex round trip: %x, got %x", orig, decoded)
		}
	})
}
