package compact

import (
	"context"
	"log/slog"

	"github.com/arloliu/arrayniac/schema"
)

// Observer receives shape discovery events from Walk.
//
// ShapeDiscovered is called once for every shape the first time it is seen at
// a path, in traversal order.
type Observer interface {
	ShapeDiscovered(path string, id int, shape schema.Shape)
}

// PathTracer is an optional extension of Observer. When the observer passed to
// WithObserver also implements PathTracer, Walk reports every container it
// enters and leaves.
type PathTracer interface {
	EnterPath(path string, depth int)
	LeavePath(path string, depth int)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(path string, id int, shape schema.Shape)

// ShapeDiscovered calls f.
func (f ObserverFunc) ShapeDiscovered(path string, id int, shape schema.Shape) {
	f(path, id, shape)
}

type nopObserver struct{}

func (nopObserver) ShapeDiscovered(string, int, schema.Shape) {}

// LogObserver reports shape discovery at Info level and path traversal at
// Debug level.
type LogObserver struct {
	log *slog.Logger
}

var (
	_ Observer   = (*LogObserver)(nil)
	_ PathTracer = (*LogObserver)(nil)
)

// NewLogObserver creates an observer writing to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{log: logger}
}

func (o *LogObserver) ShapeDiscovered(path string, id int, shape schema.Shape) {
	o.log.Info("found new shape",
		"path", schema.Display(path),
		"id", id,
		"fields", shape.String())
}

func (o *LogObserver) EnterPath(path string, depth int) {
	if !o.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	o.log.Debug("entering path", "path", schema.Display(path), "depth", depth)
}

func (o *LogObserver) LeavePath(path string, depth int) {
	if !o.log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	o.log.Debug("leaving path", "path", schema.Display(path), "depth", depth)
}
