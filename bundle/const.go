package bundle

import "math"

const (
	// Bit masks of the flag options word
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2 and 3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicBundleV1Opt is the version 1 magic number of the bundle format.
	MagicBundleV1Opt = 0xEC10
)

const (
	HeaderSize     = 32             // fixed header size in bytes
	MaxSectionSize = math.MaxUint32 // maximum size of the document, the index or the stored payload
)

var validCompressions = map[uint8]struct{}{
	1: {}, // format.CompressionNone
	2: {}, // format.CompressionZstd
	3: {}, // format.CompressionS2
	4: {}, // format.CompressionLZ4
}
