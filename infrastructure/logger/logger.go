package logger

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"sync/atomic"
	"time"
)

// Logger is a subsystem logger backed by a shared Backend. All methods are
// safe for concurrent use.
type Logger struct {
	level   uint32 // atomic access, holds a Level
	tag     string
	backend *Backend
}

// Level returns the current logging level of the subsystem.
func (l *Logger) Level() Level {
	return Level(atomic.LoadUint32(&l.level))
}

// SetLevel changes the logging level of the subsystem.
func (l *Logger) SetLevel(level Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

// Tag returns the subsystem tag of the logger.
func (l *Logger) Tag() string {
	return l.tag
}

// Tracef formats message according to format specifier and writes it at
// the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.write(LevelTrace, format, args...)
}

// Debugf formats message according to format specifier and writes it at
// the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, format, args...)
}

// Infof formats message according to format specifier and writes it at
// the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, format, args...)
}

// Warnf formats message according to format specifier and writes it at
// the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, format, args...)
}

// Errorf formats message according to format specifier and writes it at
// the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, format, args...)
}

// Criticalf formats message according to format specifier and writes it at
// the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, format, args...)
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	if level < l.Level() {
		return
	}
	if !l.backend.IsRunning() {
		return
	}
	l.backend.writeChan <- logEntry{
		log:   formatEntry(l.backend.flag, level, l.tag, format, args...),
		level: level,
	}
}

// formatEntry creates a formatted log line:
//
//	2006-01-02 15:04:05.000 [INF] TRAD: message
//
// with an optional file:line of the logging callsite per the backend flags.
func formatEntry(flags uint32, level Level, tag string, format string, args ...interface{}) []byte {
	var buf bytes.Buffer
	buf.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	buf.WriteString(" [")
	buf.WriteString(level.String())
	buf.WriteString("] ")
	buf.WriteString(tag)
	if flags&(LogFlagShortFile|LogFlagLongFile) != 0 {
		file, line, ok := callsite(flags)
		if ok {
			fmt.Fprintf(&buf, " %s:%d", file, line)
		}
	}
	buf.WriteString(": ")
	fmt.Fprintf(&buf, format, args...)
	buf.WriteByte('\n')
	return buf.Bytes()
}

// callsite returns the file name and line number of the logging callsite,
// skipping the frames of this package.
func callsite(flags uint32) (string, int, bool) {
	_, file, line, ok := runtime.Caller(4)
	if !ok {
		return "", 0, false
	}
	if flags&LogFlagShortFile != 0 {
		if i := strings.LastIndexByte(file, '/'); i >= 0 {
			file = file[i+1:]
		}
	}
	return file, line, true
}
