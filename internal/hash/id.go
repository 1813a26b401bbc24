package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given byte slices as if they were concatenated.
func Sum(parts ...[]byte) uint64 {
	if len(parts) == 1 {
		return xxhash.Sum64(parts[0])
	}

	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.Write(p)
	}

	return d.Sum64()
}

// Fingerprint accumulates a 64-bit signature over an ordered list of
// (field name, kind) pairs.
//
// Equal pair lists always produce equal fingerprints. Different lists may
// collide, so callers must confirm a fingerprint hit with an exact comparison.
type Fingerprint struct {
	d *xxhash.Digest
}

// NewFingerprint returns an empty fingerprint.
func NewFingerprint() Fingerprint {
	return Fingerprint{d: xxhash.New()}
}

// Add appends one (name, kind) pair to the signature.
func (f Fingerprint) Add(name string, kind uint8) {
	_, _ = f.d.WriteString(name)
	_, _ = f.d.Write([]byte{0x00, kind})
}

// Sum64 returns the signature of all pairs added so far.
func (f Fingerprint) Sum64() uint64 {
	return f.d.Sum64()
}
