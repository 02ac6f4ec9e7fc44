package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

const (
	initialBufferCapacity = 256

	timestampLayout = "2006-01-02T15:04:05-07:00"

	// LogFilePermissions defines the file permissions for log files (owner read/write only).
	LogFilePermissions = 0o600

	logDirPermissions = 0o700
)

// Handler is a slog.Handler writing one "time LEVEL msg key=value" line per record.
type Handler struct {
	mu     *sync.Mutex
	writer io.Writer
	level  *slog.LevelVar
	prefix string
	attrs  []slog.Attr
}

// NewFileHandler opens path for appending, creating its directory, and
// returns a Handler writing to it.
func NewFileHandler(path string, level Level) (*Handler, error) {
	if err := os.MkdirAll(filepath.Dir(path), logDirPermissions); err != nil {
		return nil, errors.Wrapf(err, "creating log directory for %s", path)
	}

	//nolint:gosec // path comes from configuration or the XDG state directory
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}

	return NewWriterHandler(file, level), nil
}

// NewWriterHandler returns a Handler writing to w.
func NewWriterHandler(w io.Writer, level Level) *Handler {
	lv := &slog.LevelVar{}
	lv.Set(level.ToSlogLevel())

	return &Handler{
		mu:     &sync.Mutex{},
		writer: w,
		level:  lv,
	}
}

// SetLevel changes the minimum level for this handler and all handlers derived from it.
func (h *Handler) SetLevel(level Level) {
	h.level.Set(level.ToSlogLevel())
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := make([]byte, 0, initialBufferCapacity)

	buf = append(buf, r.Time.Local().Format(timestampLayout)...)
	buf = append(buf, ' ')
	buf = append(buf, r.Level.String()...)
	buf = append(buf, ' ')
	buf = append(buf, r.Message...)

	for _, a := range h.attrs {
		buf = appendAttr(buf, "", a)
	}

	r.Attrs(func(a slog.Attr) bool {
		buf = appendAttr(buf, h.prefix, a)

		return true
	})

	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.writer.Write(buf)

	return err
}

// WithAttrs returns a Handler that adds attrs to every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)

	for _, a := range attrs {
		a.Key = h.prefix + a.Key
		clone.attrs = append(clone.attrs, a)
	}

	return &clone
}

// WithGroup returns a Handler that prefixes subsequent keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	clone := *h
	clone.prefix = h.prefix + name + "."

	return &clone
}

// Close closes the underlying writer if it is an io.Closer.
func (h *Handler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if closer, ok := h.writer.(io.Closer); ok {
		return closer.Close()
	}

	return nil
}

func appendAttr(buf []byte, prefix string, a slog.Attr) []byte {
	if a.Equal(slog.Attr{}) {
		return buf
	}

	buf = append(buf, ' ')
	buf = append(buf, prefix...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')

	val := a.Value.Resolve().String()
	if strings.ContainsAny(val, " \t\n\"") {
		return append(buf, quote(val)...)
	}

	return append(buf, val...)
}

var quoteReplacer = strings.NewReplacer(
	"\\", "\\\\",
	"\"", "\\\"",
	"\n", "\\n",
	"\r", "\\r",
	"\t", "\\t",
)

func quote(s string) string {
	return "\"" + quoteReplacer.Replace(s) + "\""
}
