// Package memzero clears key material from buffers once it is no longer
// needed. Zeroing is best-effort: copies already made by the runtime or by
// callers are out of reach.
package memzero

// Zero overwrites b with zeros in place.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ZeroAll wipes every buffer in bs.
func ZeroAll(bs ...[]byte) {
	for _, b := range bs {
		Zero(b)
	}
}
