// Package bundle packs a compact document and its index into one binary blob.
//
// A bundle is a 32-byte Header followed by the payload document||index,
// compressed as a whole. The header records both uncompressed sizes and an
// xxHash64 checksum of the uncompressed payload, so Unpack detects truncation
// and corruption before handing the documents to the decoder.
//
//	blob, err := bundle.Pack(document, index, bundle.WithCompression(format.CompressionS2))
//	...
//	b, err := bundle.Unpack(blob)
//	out, err := compact.Decode(b.Document, b.Index)
package bundle

import (
	"fmt"

	"github.com/arloliu/arrayniac/compress"
	"github.com/arloliu/arrayniac/errs"
	"github.com/arloliu/arrayniac/internal/hash"
	"github.com/arloliu/arrayniac/internal/pool"
)

// Bundle is an unpacked bundle.
type Bundle struct {
	Header   Header
	Document []byte
	Index    []byte
}

// Pack builds a bundle from a compact document and its index.
func Pack(document, index []byte, opts ...Option) ([]byte, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	header, err := NewHeader(len(document), len(index))
	if err != nil {
		return nil, err
	}
	header.Flag.SetCompression(cfg.compression)
	if cfg.bigEndian {
		header.Flag.WithBigEndian()
	}
	header.Checksum = hash.Sum(document, index)

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	buf := pool.GetDocumentBuffer()
	defer pool.PutDocumentBuffer(buf)

	_, _ = buf.Write(document)
	_, _ = buf.Write(index)

	payload, err := codec.Compress(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("compress bundle payload: %w", err)
	}
	if len(payload) > MaxSectionSize {
		return nil, errs.ErrPayloadTooLarge
	}
	header.PayloadSize = uint32(len(payload)) //nolint: gosec

	out := make([]byte, 0, HeaderSize+len(payload))
	out = header.AppendBytes(out)

	return append(out, payload...), nil
}

// Unpack validates a bundle and returns its documents.
//
// With CompressionNone the returned documents share memory with data.
func Unpack(data []byte) (*Bundle, error) {
	if len(data) < HeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}

	b := &Bundle{}
	if err := b.Header.Parse(data[:HeaderSize]); err != nil {
		return nil, err
	}

	stored := data[HeaderSize:]
	if len(stored) != int(b.Header.PayloadSize) {
		return nil, fmt.Errorf("%w: header declares %d bytes, found %d",
			errs.ErrPayloadSize, b.Header.PayloadSize, len(stored))
	}

	codec, err := compress.GetCodec(b.Header.Flag.GetCompression())
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(stored)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrChecksumMismatch, err)
	}
	if len(payload) != b.Header.UncompressedSize() {
		return nil, fmt.Errorf("%w: header declares %d uncompressed bytes, found %d",
			errs.ErrPayloadSize, b.Header.UncompressedSize(), len(payload))
	}
	if hash.Sum(payload) != b.Header.Checksum {
		return nil, errs.ErrChecksumMismatch
	}

	b.Document = payload[:b.Header.DocumentSize:b.Header.DocumentSize]
	b.Index = payload[b.Header.DocumentSize:]

	return b, nil
}
