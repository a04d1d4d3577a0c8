package archive

import (
	"fmt"
	"log/slog"
	"strings"
)

// badgerLogger adapts slog to badger.Logger.
type badgerLogger struct {
	l *slog.Logger
}

func (b badgerLogger) Errorf(f string, v ...any)   { b.l.Error(msg(f, v), slog.String("component", "badger")) }
func (b badgerLogger) Warningf(f string, v ...any) { b.l.Warn(msg(f, v), slog.String("component", "badger")) }
func (b badgerLogger) Infof(f string, v ...any)    { b.l.Debug(msg(f, v), slog.String("component", "badger")) }
func (b badgerLogger) Debugf(f string, v ...any)   { b.l.Debug(msg(f, v), slog.String("component", "badger")) }

func msg(f string, v []any) string {
	return strings.TrimSpace(fmt.Sprintf(f, v...))
}
