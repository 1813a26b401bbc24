package main

import (
	"io"
	"log/slog"

	"github.com/arloliu/arrayniac/compact"
)

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func observerOpts(logger *slog.Logger, maxDepth int) []compact.Option {
	opts := []compact.Option{compact.WithObserver(compact.NewLogObserver(logger))}
	if maxDepth > 0 {
		opts = append(opts, compact.WithMaxDepth(maxDepth))
	}

	return opts
}
