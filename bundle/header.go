package bundle

import (
	"github.com/arloliu/arrayniac/endian"
	"github.com/arloliu/arrayniac/errs"
)

// Header is the fixed 32-byte header of a bundle.
//
// The payload that follows it is the compact document immediately followed by
// the index document, compressed as a whole with Flag.Compression.
type Header struct {
	// Flag is a packed field for the magic number (0xEC10), endianness and compression.
	Flag Flag // 3 bytes, offset 0-2

	reserved0 uint8 // must be zero, offset 3

	// DocumentSize is the uncompressed size of the compact document.
	DocumentSize uint32 // 4 bytes, offset 4-7
	// IndexSize is the uncompressed size of the index document.
	IndexSize uint32 // 4 bytes, offset 8-11
	// PayloadSize is the stored (possibly compressed) payload size.
	PayloadSize uint32 // 4 bytes, offset 12-15
	// Checksum is the xxHash64 of the uncompressed payload.
	Checksum uint64 // 8 bytes, offset 16-23

	reserved1 [8]byte // must be zero, offset 24-31
}

// NewHeader creates a header with default flags and the given section sizes.
func NewHeader(documentSize, indexSize int) (*Header, error) {
	if documentSize < 0 || documentSize > MaxSectionSize ||
		indexSize < 0 || indexSize > MaxSectionSize ||
		documentSize+indexSize > MaxSectionSize {
		return nil, errs.ErrPayloadTooLarge
	}

	return &Header{
		Flag:         NewFlag(),
		DocumentSize: uint32(documentSize), //nolint: gosec
		IndexSize:    uint32(indexSize),    //nolint: gosec
	}, nil
}

// Parse parses the header from a byte slice.
// It returns an error if the data is not exactly 32 bytes or if the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// the options word is always little-endian so the byte order can be read from it
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.reserved0 = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.GetEndianEngine()

	h.DocumentSize = engine.Uint32(data[4:8])
	h.IndexSize = engine.Uint32(data[8:12])
	h.PayloadSize = engine.Uint32(data[12:16])
	h.Checksum = engine.Uint64(data[16:24])
	copy(h.reserved1[:], data[24:32])

	if h.reserved0 != 0 || h.reserved1 != [8]byte{} {
		return errs.ErrInvalidHeaderFlags
	}

	if uint64(h.DocumentSize)+uint64(h.IndexSize) > MaxSectionSize {
		return errs.ErrPayloadTooLarge
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	return h.AppendBytes(make([]byte, 0, HeaderSize))
}

// AppendBytes appends the serialized header to dst.
func (h *Header) AppendBytes(dst []byte) []byte {
	engine := h.GetEndianEngine()

	dst = append(dst, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.Compression, h.reserved0)
	dst = engine.AppendUint32(dst, h.DocumentSize)
	dst = engine.AppendUint32(dst, h.IndexSize)
	dst = engine.AppendUint32(dst, h.PayloadSize)
	dst = engine.AppendUint64(dst, h.Checksum)

	return append(dst, h.reserved1[:]...)
}

// UncompressedSize returns the size of the decompressed payload.
func (h *Header) UncompressedSize() int {
	return int(h.DocumentSize) + int(h.IndexSize)
}

// GetEndianEngine returns the appropriate endian engine based on the header flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	if h.Flag.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}
