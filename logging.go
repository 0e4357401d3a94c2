package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

// LogHandler writes one line per record: time, level, message and the
// attributes as key=value pairs. Group names prefix the attribute keys.
type LogHandler struct {
	level  slog.Leveler
	prefix string
	attrs  []string
	mu     *sync.Mutex
	out    io.Writer
}

func NewLogHandler(out io.Writer, opts *slog.HandlerOptions) *LogHandler {
	handler := &LogHandler{
		level: slog.LevelInfo,
		mu:    &sync.Mutex{},
		out:   out,
	}
	if opts != nil && opts.Level != nil {
		handler.level = opts.Level
	}
	return handler
}

func (self *LogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= self.level.Level()
}

func (self *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handler := *self
	handler.attrs = make([]string, 0, len(self.attrs)+len(attrs))
	handler.attrs = append(handler.attrs, self.attrs...)
	for _, a := range attrs {
		handler.attrs = self._AppendAttr(handler.attrs, self.prefix, a)
	}
	return &handler
}

func (self *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return self
	}
	handler := *self
	handler.prefix = self.prefix + name + "."
	return &handler
}

func (self *LogHandler) _AppendAttr(strs []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return strs
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix = prefix + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			strs = self._AppendAttr(strs, prefix, ga)
		}
		return strs
	}
	return append(strs, prefix+a.Key+"="+a.Value.String())
}

func (self *LogHandler) Handle(ctx context.Context, r slog.Record) error {
	strs := make([]string, 0, 3+len(self.attrs)+r.NumAttrs())
	strs = append(strs, r.Time.Format("2006/01/02 15:04:05"), r.Level.String(), r.Message)
	strs = append(strs, self.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		strs = self._AppendAttr(strs, self.prefix, a)
		return true
	})
	b := []byte(strings.Join(strs, " ") + "\n")

	self.mu.Lock()
	defer self.mu.Unlock()
	_, err := self.out.Write(b)
	return err
}

func ParseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if level == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %v", level)
	}
	return l, nil
}

// SetupLogging installs the LogHandler as default logger.
func SetupLogging(out io.Writer, level string) error {
	l, err := ParseLogLevel(level)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(NewLogHandler(out, &slog.HandlerOptions{Level: l})))
	return nil
}
