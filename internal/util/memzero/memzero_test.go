package memzero_test

import (
	"testing"

	"seedring/internal/util/memzero"
)

func TestZero(t *testing.T) {
	b := []byte{1, 2, 3}
	memzero.Zero(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not cleared: %d", i, v)
		}
	}
	memzero.Zero(nil) // must not panic
}

func TestZeroAll(t *testing.T) {
	a := []byte{0xff}
	b := []byte{0xaa, 0xbb}
	memzero.ZeroAll(a, b, nil)
	if a[0] != 0 || b[0] != 0 || b[1] != 0 {
		t.Fatalf("buffers not cleared: %v %v", a, b)
	}
}
