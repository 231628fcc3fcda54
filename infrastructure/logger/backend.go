package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/jrick/logrotate/rotator"
	"github.com/pkg/errors"
)

// Flags to modify Backend's behavior.
const (
	// LogFlagLongFile modifies the logger output to include full path and line number
	// of the logging callsite, e.g. /a/b/c/main.go:123.
	LogFlagLongFile uint32 = 1 << iota

	// LogFlagShortFile modifies the logger output to include filename and line number
	// of the logging callsite, e.g. main.go:123. Takes precedence over LogFlagLongFile.
	LogFlagShortFile
)

// defaultFlags specifies changes to the default logger behavior. It is
// configured using the LOGFLAGS environment variable.
var defaultFlags = flagsFromEnv()

// flagsFromEnv reads logger flags from the LOGFLAGS environment variable.
// Multiple flags can be set at once, separated by commas.
func flagsFromEnv() (flags uint32) {
	for _, f := range strings.Split(os.Getenv("LOGFLAGS"), ",") {
		switch f {
		case "longfile":
			flags |= LogFlagLongFile
		case "shortfile":
			flags |= LogFlagShortFile
		}
	}
	return flags
}

const (
	defaultThresholdKB = 10 * 1000 // 10 MB log files by default.
	defaultMaxRolls    = 8         // keep the 8 last log files by default.
)

type logEntry struct {
	log   []byte
	level Level
}

type logWriter struct {
	io.WriteCloser
	logLevel Level
}

// Backend is a logging backend. Subsystem loggers created from the backend
// write to the backend's writers. The backend serializes writes from all
// subsystems through a single goroutine.
type Backend struct {
	flag      uint32
	isRunning uint32
	writers   []logWriter
	writeChan chan logEntry
	syncClose sync.Mutex // held while the run loop is draining writes
}

// NewBackend creates a new logger backend with flags taken from the
// LOGFLAGS environment variable.
func NewBackend() *Backend {
	return &Backend{flag: defaultFlags, writeChan: make(chan logEntry)}
}

// AddLogWriter adds an io.WriteCloser which receives all log output at or
// above logLevel. It may only be called before the backend is running.
func (b *Backend) AddLogWriter(writer io.WriteCloser, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add a writer while the logger backend is running")
	}
	b.writers = append(b.writers, logWriter{WriteCloser: writer, logLevel: logLevel})
	return nil
}

// AddLogFile adds a rotated log file which receives all log output at or
// above logLevel. The file and its directory are created if missing.
func (b *Backend) AddLogFile(logFile string, logLevel Level) error {
	if b.IsRunning() {
		return errors.New("cannot add a log file while the logger backend is running")
	}
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		err := os.MkdirAll(logDir, 0700)
		if err != nil {
			return errors.Wrapf(err, "failed to create log directory %s", logDir)
		}
	}
	r, err := rotator.New(logFile, defaultThresholdKB, false, defaultMaxRolls)
	if err != nil {
		return errors.Wrapf(err, "failed to create file rotator for %s", logFile)
	}
	b.writers = append(b.writers, logWriter{WriteCloser: r, logLevel: logLevel})
	return nil
}

// Run launches the backend's write loop in a separate goroutine. It should
// only be called once.
func (b *Backend) Run() error {
	if !atomic.CompareAndSwapUint32(&b.isRunning, 0, 1) {
		return errors.New("the logger backend is already running")
	}
	go func() {
		defer func() {
			if err := recover(); err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Fatal error in logger.Backend goroutine: %+v\n", err)
				_, _ = fmt.Fprintf(os.Stderr, "Goroutine stacktrace: %s\n", debug.Stack())
			}
		}()
		b.runBlocking()
	}()
	return nil
}

func (b *Backend) runBlocking() {
	defer atomic.StoreUint32(&b.isRunning, 0)
	b.syncClose.Lock()
	defer b.syncClose.Unlock()

	for entry := range b.writeChan {
		for _, writer := range b.writers {
			if entry.level >= writer.logLevel {
				_, _ = writer.Write(entry.log)
			}
		}
	}
}

// IsRunning returns true if Run has been called and the write loop has not
// yet terminated.
func (b *Backend) IsRunning() bool {
	return atomic.LoadUint32(&b.isRunning) != 0
}

// Close shuts down the write loop and finalizes all writers, including any
// file rotators. Pending writes are flushed first.
func (b *Backend) Close() {
	close(b.writeChan)
	// Wait for the run loop to finish writing using the syncClose mutex.
	b.syncClose.Lock()
	defer b.syncClose.Unlock()
	for _, writer := range b.writers {
		_ = writer.Close()
	}
}

// Logger returns a new logger for a particular subsystem that writes to the
// Backend b. The tag describes the subsystem and is included in all log
// messages. The logger is silent (LevelOff) until a level is set.
func (b *Backend) Logger(subsystemTag string) *Logger {
	return &Logger{level: uint32(LevelOff), tag: subsystemTag, backend: b}
}
