package compact

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	mustWalk(t, `{"items":[{"a":1},{"b":2}]}`, WithObserver(NewLogObserver(logger)))

	out := buf.String()
	require.Contains(t, out, `msg="found new shape" path=$.items[] id=0 fields={a:number}`)
	require.Contains(t, out, `msg="found new shape" path=$.items[] id=1 fields={b:number}`)
	require.Contains(t, out, `msg="found new shape" path=$ id=0 fields={items:array}`)
	require.NotContains(t, out, "entering path", "debug events are filtered at info level")

	buf.Reset()
	logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	mustWalk(t, `[{"a":1}]`, WithObserver(NewLogObserver(logger)))

	out = buf.String()
	require.Contains(t, out, `msg="entering path" path=$ depth=1`)
	require.Contains(t, out, `msg="entering path" path=$[] depth=2`)
	require.Contains(t, out, `msg="leaving path" path=$ depth=1`)
}
