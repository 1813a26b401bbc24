// Package arrayniac compacts JSON documents by replacing every object with a
// positional array.
//
// Field names are moved out of the data into a separate index document that
// records, for every path where objects occur, the shapes (field name sets)
// seen there and the position of each field. Paths with more than one shape
// prefix each object array with a shape id. The decoder rebuilds the original
// JSON from the compact document and its index.
//
// # Basic Usage
//
//	res, err := arrayniac.Encode([]byte(`[{"a":1},{"a":2,"b":3}]`))
//	if err != nil {
//	    return err
//	}
//	// res.Document: [[0,1],[1,2,3]]
//	// res.Index:    {"[]":[{"a":0},{"a":0,"b":1}]}
//
//	out, err := arrayniac.Decode(res.Document, res.Index)
//	// out: [{"a":1},{"a":2,"b":3}]
//
// Both documents can be stored as one compressed, checksummed blob:
//
//	blob, err := res.Pack(bundle.WithCompression(format.CompressionZstd))
//	...
//	out, err := arrayniac.DecodeBundle(blob)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the compact,
// schema and bundle packages. For shape introspection, observers or direct
// access to the value tree use those packages directly.
package arrayniac

import (
	"github.com/arloliu/arrayniac/bundle"
	"github.com/arloliu/arrayniac/compact"
)

// Result holds the output of one encoding run.
type Result struct {
	Document []byte
	Index    []byte
	Stats    compact.Stats
}

// Encode parses raw JSON text and compacts it.
func Encode(data []byte, opts ...compact.Option) (*Result, error) {
	v, err := compact.Parse(data)
	if err != nil {
		return nil, err
	}

	res, err := EncodeValue(v, opts...)
	if err != nil {
		return nil, err
	}
	res.Stats.InputBytes = len(data)

	return res, nil
}

// EncodeValue compacts an already parsed JSON value, as produced by
// encoding/json or compact.Parse. Stats.InputBytes is left zero.
func EncodeValue(v any, opts ...compact.Option) (*Result, error) {
	tree, err := compact.Walk(v, opts...)
	if err != nil {
		return nil, err
	}

	document, err := tree.Document()
	if err != nil {
		return nil, err
	}

	index, err := tree.Index()
	if err != nil {
		return nil, err
	}

	stats := tree.Stats()
	stats.DocumentBytes = len(document)
	stats.IndexBytes = len(index)

	return &Result{Document: document, Index: index, Stats: stats}, nil
}

// Decode rebuilds standard JSON from a compact document and its index.
func Decode(document, index []byte, opts ...compact.Option) ([]byte, error) {
	return compact.Decode(document, index, opts...)
}

// Pack stores the compact document and its index in one bundle.
func (r *Result) Pack(opts ...bundle.Option) ([]byte, error) {
	return bundle.Pack(r.Document, r.Index, opts...)
}

// DecodeBundle unpacks a bundle and rebuilds standard JSON from it.
func DecodeBundle(blob []byte, opts ...compact.Option) ([]byte, error) {
	b, err := bundle.Unpack(blob)
	if err != nil {
		return nil, err
	}

	return compact.Decode(b.Document, b.Index, opts...)
}
