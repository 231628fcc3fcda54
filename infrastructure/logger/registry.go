package logger

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// SubsystemTags holds the tags of all escrowd subsystems.
var SubsystemTags = struct {
	ESCD,
	PMNT,
	TRAD,
	CNFG string
}{
	ESCD: "ESCD",
	PMNT: "PMNT",
	TRAD: "TRAD",
	CNFG: "CNFG",
}

var backendLog = NewBackend()

var (
	subsystemsMutex sync.Mutex
	subsystems      = make(map[string]*Logger)
)

// Get returns the logger of a specific subsystem, creating it on first use.
// Loggers for the same tag are shared.
func Get(tag string) *Logger {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()
	log, ok := subsystems[tag]
	if !ok {
		log = backendLog.Logger(tag)
		subsystems[tag] = log
	}
	return log
}

// InitLog attaches log files to the backend and starts its write loop.
// Normal log output at the trace level and above goes to logFile, errors
// and above additionally go to errLogFile.
func InitLog(logFile, errLogFile string) error {
	err := backendLog.AddLogFile(logFile, LevelTrace)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s", logFile)
	}
	err = backendLog.AddLogFile(errLogFile, LevelWarn)
	if err != nil {
		return errors.Wrapf(err, "error adding log file %s", errLogFile)
	}
	err = backendLog.Run()
	if err != nil {
		return errors.Wrap(err, "error starting the logger backend")
	}
	return nil
}

// SetLogLevels sets the logging level of all registered subsystems.
func SetLogLevels(level Level) {
	subsystemsMutex.Lock()
	defer subsystemsMutex.Unlock()
	for _, log := range subsystems {
		log.SetLevel(level)
	}
}

// ParseAndSetLogLevels parses a debug level specification and applies it.
// The specification is either a single level applied to all subsystems
// ("info") or a comma-separated list of subsystem=level pairs
// ("PMNT=debug,TRAD=trace").
func ParseAndSetLogLevels(levelSpec string) error {
	if !strings.Contains(levelSpec, "=") {
		level, ok := LevelFromString(levelSpec)
		if !ok {
			return errors.Errorf("invalid log level %s", levelSpec)
		}
		SetLogLevels(level)
		return nil
	}

	for _, pair := range strings.Split(levelSpec, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return errors.Errorf("invalid subsystem=level pair %s", pair)
		}
		tag, levelStr := fields[0], fields[1]
		level, ok := LevelFromString(levelStr)
		if !ok {
			return errors.Errorf("invalid log level %s for subsystem %s", levelStr, tag)
		}
		subsystemsMutex.Lock()
		log, ok := subsystems[tag]
		subsystemsMutex.Unlock()
		if !ok {
			return errors.Errorf("unknown subsystem %s", tag)
		}
		log.SetLevel(level)
	}
	return nil
}
