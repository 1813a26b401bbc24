package compact

// Stats summarizes one encoding run.
type Stats struct {
	Paths         int // paths with at least one object
	Shapes        int // distinct shapes across all paths
	TaggedPaths   int // paths with more than one shape
	Objects       int // object instances
	InputBytes    int
	DocumentBytes int
	IndexBytes    int
}

// Stats returns the shape statistics of the tree. Byte sizes are left zero.
func (t *Tree) Stats() Stats {
	return Stats{
		Paths:       t.Registry.Len(),
		Shapes:      t.Registry.ShapeCount(),
		TaggedPaths: t.Registry.TaggedPaths(),
		Objects:     t.Objects,
	}
}

// OutputBytes returns the combined size of the compact and index documents.
func (s Stats) OutputBytes() int {
	return s.DocumentBytes + s.IndexBytes
}

// Ratio returns output size divided by input size, or 0 when the input size is unknown.
func (s Stats) Ratio() float64 {
	if s.InputBytes == 0 {
		return 0
	}

	return float64(s.OutputBytes()) / float64(s.InputBytes)
}

// Savings returns the space saved as a percentage of the input size.
// It is negative when the compact form is larger.
func (s Stats) Savings() float64 {
	if s.InputBytes == 0 {
		return 0
	}

	return (1.0 - s.Ratio()) * 100.0
}
