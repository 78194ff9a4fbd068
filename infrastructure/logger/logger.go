// Copyright (c) 2024 The avmd developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

// logEntry is one formatted message together with its level, queued to the
// backend's writers.
type logEntry struct {
	log   []byte
	level Level
}

// Logger is a subsystem logger writing through a shared Backend. A tag
// describing the subsystem is included in every message.
type Logger struct {
	lvl       Level
	tag       string
	b         *Backend
	writeChan chan logEntry
}

// Level returns the current logging level.
func (l *Logger) Level() Level {
	return l.lvl
}

// SetLevel changes the logging level; messages below it are discarded.
func (l *Logger) SetLevel(logLevel Level) {
	l.lvl = logLevel
}

func (l *Logger) write(logLevel Level, format string, args ...interface{}) {
	if logLevel < l.lvl || !l.b.IsRunning() {
		return
	}

	t := time.Now()
	var file string
	var line int
	if l.b.flag&(LogFlagShortFile|LogFlagLongFile) != 0 {
		var ok bool
		_, file, line, ok = runtime.Caller(2)
		if !ok {
			file = "???"
			line = 0
		} else if l.b.flag&LogFlagShortFile != 0 {
			for i := len(file) - 1; i > 0; i-- {
				if os.IsPathSeparator(file[i]) {
					file = file[i+1:]
					break
				}
			}
		}
	}

	buf := bytes.NewBuffer(make([]byte, 0, normalLogSize))
	fmt.Fprintf(buf, "%s [%s] %s: ", t.Format("2006-01-02 15:04:05.000"), logLevel, l.tag)
	if file != "" {
		fmt.Fprintf(buf, "%s:%d ", file, line)
	}
	if format == "" {
		fmt.Fprintln(buf, args...)
	} else {
		fmt.Fprintf(buf, format, args...)
		buf.WriteByte('\n')
	}
	l.writeChan <- logEntry{log: buf.Bytes(), level: logLevel}
}

// Tracef formats a message at the trace level.
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.write(LevelTrace, format, args...)
}

// Debugf formats a message at the debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.write(LevelDebug, format, args...)
}

// Infof formats a message at the info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write(LevelInfo, format, args...)
}

// Warnf formats a message at the warn level.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.write(LevelWarn, format, args...)
}

// Errorf formats a message at the error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write(LevelError, format, args...)
}

// Criticalf formats a message at the critical level.
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.write(LevelCritical, format, args...)
}

// Trace logs a message at the trace level.
func (l *Logger) Trace(args ...interface{}) {
	l.write(LevelTrace, "", args...)
}

// Debug logs a message at the debug level.
func (l *Logger) Debug(args ...interface{}) {
	l.write(LevelDebug, "", args...)
}

// Info logs a message at the info level.
func (l *Logger) Info(args ...interface{}) {
	l.write(LevelInfo, "", args...)
}

// Warn logs a message at the warn level.
func (l *Logger) Warn(args ...interface{}) {
	l.write(LevelWarn, "", args...)
}

// Error logs a message at the error level.
func (l *Logger) Error(args ...interface{}) {
	l.write(LevelError, "", args...)
}

// Critical logs a message at the critical level.
func (l *Logger) Critical(args ...interface{}) {
	l.write(LevelCritical, "", args...)
}

// subsystemTags are the tags of the loggers this module registers.
var subsystemTags = struct {
	AVMC,
	SCRP,
	STAT,
	CLI string
}{
	AVMC: "AVMC",
	SCRP: "SCRP",
	STAT: "STAT",
	CLI:  "CLI",
}

// SubsystemTags exposes the registered subsystem tags.
var SubsystemTags = subsystemTags

var (
	registryMutex sync.Mutex
	registry      = make(map[string]*Logger)
	backend       = NewBackend()
)

// Get returns the logger for the given subsystem tag, creating it on first
// use. The second return value reports whether the tag was known already.
func Get(tag string) (*Logger, bool) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	if l, ok := registry[tag]; ok {
		return l, true
	}
	l := backend.Logger(tag)
	registry[tag] = l
	return l, false
}

// SetLogLevels sets the level of every registered logger.
func SetLogLevels(level Level) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	for _, l := range registry {
		l.SetLevel(level)
	}
}

// InitLog binds the backend to a rotating log file and stderr and starts
// it. It is meant to be called once, by the process entry point.
func InitLog(logFile string, level Level) error {
	if err := backend.AddLogWriter(os.Stderr, level); err != nil {
		return err
	}
	if logFile != "" {
		if err := backend.AddLogFile(logFile, LevelTrace); err != nil {
			return err
		}
	}
	return backend.Run()
}

// Close flushes and stops the logging backend.
func Close() {
	backend.Close()
}
