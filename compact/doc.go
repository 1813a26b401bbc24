// Package compact implements the shape-discovery and array-encoding engine.
//
// Walk turns a generic JSON value into a Tree: a typed value tree plus a
// schema.Registry recording, for every path, the distinct shapes objects take
// there. Tree.Document renders the tree with every object replaced by a
// positional array and Tree.Index renders the registry as the companion index
// document. Decode inverts the pair back into standard JSON.
//
// # Example
//
// The document
//
//	[{"a":1},{"a":2,"b":3}]
//
// has two shapes at path "[]", so objects there carry a leading shape id:
//
//	document: [[0,1],[1,2,3]]
//	index:    {"[]":[{"a":0},{"a":0,"b":1}]}
//
// A path with a single shape is written without ids and indexed by a bare
// {field: position} object.
//
// Walk, the encoder and the decoder are synchronous and keep all state in a
// per-call traversal context, so distinct calls may run concurrently.
package compact
