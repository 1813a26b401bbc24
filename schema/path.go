package schema

// Path segment markers. The root is the empty path, object fields append
// FieldSep followed by the field name and array elements append ArraySuffix.
const (
	Root        = ""
	FieldSep    = "."
	ArraySuffix = "[]"
)

// PathBuilder is a mutable path accumulator that is pushed before descending
// into a child and popped after returning from it.
//
// The zero value is the root path. PathBuilder is not safe for concurrent use.
type PathBuilder struct {
	buf   []byte
	marks []int
}

// PushField descends into the object field name.
func (p *PathBuilder) PushField(name string) {
	p.marks = append(p.marks, len(p.buf))
	p.buf = append(p.buf, FieldSep...)
	p.buf = append(p.buf, name...)
}

// PushArray descends into the elements of an array.
func (p *PathBuilder) PushArray() {
	p.marks = append(p.marks, len(p.buf))
	p.buf = append(p.buf, ArraySuffix...)
}

// Pop removes the most recently pushed segment. Pop on the root is a no-op.
func (p *PathBuilder) Pop() {
	n := len(p.marks)
	if n == 0 {
		return
	}
	p.buf = p.buf[:p.marks[n-1]]
	p.marks = p.marks[:n-1]
}

// Depth returns the number of segments currently pushed.
func (p *PathBuilder) Depth() int {
	return len(p.marks)
}

// String returns the current path.
func (p *PathBuilder) String() string {
	return string(p.buf)
}

// Bytes returns the current path without copying. The slice is only valid
// until the next Push or Pop.
func (p *PathBuilder) Bytes() []byte {
	return p.buf
}

// Reset returns the builder to the root path, keeping its capacity.
func (p *PathBuilder) Reset() {
	p.buf = p.buf[:0]
	p.marks = p.marks[:0]
}

// Display returns a human readable form of path, using "$" for the root.
func Display(path string) string {
	if path == Root {
		return "$"
	}

	return "$" + path
}
