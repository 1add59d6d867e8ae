package logging

import (
	"io"
	"log/slog"
	"os"
	"runtime/debug"
)

// New builds the process logger: JSON records on w, decorated with the
// trace id from context and a program info group.
func New(w io.Writer, level slog.Level) *slog.Logger {
	handler := NewTraceHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))

	return slog.New(handler).With(newProgramAttr())
}

func newProgramAttr() slog.Attr {
	buildInfo, _ := debug.ReadBuildInfo()
	hostname, _ := os.Hostname()

	return slog.Group("program",
		slog.Int("pid", os.Getpid()),
		slog.String("machine", hostname),
		slog.String("version", buildInfo.Main.Version),
	)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
