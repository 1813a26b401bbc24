package bundle

import (
	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/format"
)

// Flag is the packed flag field at the start of a bundle header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is reserved, must be set to 0.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved, must be set to 0.
	// Bits 4-15 are magic number to identify the bundle format:
	//   - 0xEC10 (0b1110_1100_0001_0000): bundle format v1
	Options uint16

	// Compression indicates the compression applied to the payload.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	Compression uint8
}

// NewFlag creates a little-endian, zstd-compressed bundle flag.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicBundleV1Opt,
		Compression: uint8(format.CompressionZstd),
	}
	flag.WithLittleEndian()

	return flag
}

// IsValidMagicNumber checks if the magic number in the Options field is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicBundleV1Opt
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian returns whether the header fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.Compression]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
