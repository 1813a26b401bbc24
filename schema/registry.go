package schema

import (
	"slices"
)

// Entry is the ordered, append-only list of distinct shapes observed at one path.
// A shape's id is its position in the list.
type Entry struct {
	path    string
	shapes  []Shape
	buckets map[uint64][]int // fingerprint -> shape ids
}

func newEntry(path string) *Entry {
	return &Entry{
		path:    path,
		buckets: make(map[uint64][]int, 1),
	}
}

// Path returns the path this entry describes.
func (e *Entry) Path() string {
	return e.path
}

// Len returns the number of distinct shapes at the path.
func (e *Entry) Len() int {
	return len(e.shapes)
}

// Tagged reports whether encoded objects at this path carry a leading shape id.
// That is the case exactly when more than one shape was observed.
func (e *Entry) Tagged() bool {
	return len(e.shapes) > 1
}

// Shape returns the shape with the given id.
func (e *Entry) Shape(id int) (Shape, bool) {
	if id < 0 || id >= len(e.shapes) {
		return Shape{}, false
	}

	return e.shapes[id], true
}

// Shapes returns the shapes in id order. The slice must not be modified.
func (e *Entry) Shapes() []Shape {
	return e.shapes
}

// Lookup returns the id of a shape equal to s.
func (e *Entry) Lookup(s Shape) (int, bool) {
	return e.lookup(s, s.Fingerprint())
}

func (e *Entry) lookup(s Shape, fp uint64) (int, bool) {
	for _, id := range e.buckets[fp] {
		if e.shapes[id].Equal(s) {
			return id, true
		}
	}

	return -1, false
}

func (e *Entry) add(s Shape, fp uint64) int {
	id := len(e.shapes)
	e.shapes = append(e.shapes, s)
	e.buckets[fp] = append(e.buckets[fp], id)

	return id
}

// Registry maps paths to the shapes observed there.
//
// Ids are assigned in first-discovery order and never change or disappear for
// the lifetime of the registry.
//
// Note: Registry is NOT thread-safe. It is built by a single traversal and only
// read afterwards.
type Registry struct {
	entries map[string]*Entry
	shapes  int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Register returns the id of shape s at path, appending s as a new shape if no
// equal shape exists there yet. added reports whether s was new.
func (r *Registry) Register(path string, s Shape) (id int, added bool) {
	return r.register(path, nil, s)
}

// RegisterBytes is Register for a path held in a reusable buffer. The path is
// only copied when a new entry is created.
func (r *Registry) RegisterBytes(path []byte, s Shape) (id int, added bool) {
	return r.register("", path, s)
}

func (r *Registry) register(path string, pathBytes []byte, s Shape) (int, bool) {
	var (
		e  *Entry
		ok bool
	)
	if pathBytes != nil {
		e, ok = r.entries[string(pathBytes)]
		if !ok {
			path = string(pathBytes)
		}
	} else {
		e, ok = r.entries[path]
	}
	if !ok {
		e = newEntry(path)
		r.entries[path] = e
	}

	fp := s.Fingerprint()
	if id, found := e.lookup(s, fp); found {
		return id, false
	}
	r.shapes++

	return e.add(s, fp), true
}

// Entry returns the entry for path.
func (r *Registry) Entry(path string) (*Entry, bool) {
	e, ok := r.entries[path]
	return e, ok
}

// EntryBytes is Entry for a path held in a reusable buffer.
func (r *Registry) EntryBytes(path []byte) (*Entry, bool) {
	e, ok := r.entries[string(path)]
	return e, ok
}

// Len returns the number of paths at which objects were observed.
func (r *Registry) Len() int {
	return len(r.entries)
}

// ShapeCount returns the total number of distinct shapes across all paths.
func (r *Registry) ShapeCount() int {
	return r.shapes
}

// TaggedPaths returns the number of paths with more than one shape.
func (r *Registry) TaggedPaths() int {
	n := 0
	for _, e := range r.entries {
		if e.Tagged() {
			n++
		}
	}

	return n
}

// Paths returns all registered paths in lexicographic order.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.entries))
	for p := range r.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)

	return paths
}
