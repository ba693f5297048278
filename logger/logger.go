package logger

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"
)

// Target selects where log lines go.
type Target int

const (
	// TargetStderr writes to the process's standard error.
	TargetStderr Target = iota
	// TargetFile appends to Config.FilePath.
	TargetFile
)

func (t Target) String() string {
	if t == TargetFile {
		return "file"
	}
	return "stderr"
}

// ParseTarget parses "stderr" or "file" (case-insensitive).
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "stderr":
		return TargetStderr, nil
	case "file":
		return TargetFile, nil
	}
	return 0, fmt.Errorf("unknown log target %q", s)
}

// Config defines options for New and Init.
type Config struct {
	// Target selects standard error or a file.
	// Default: TargetStderr
	Target Target
	// FilePath is the file appended to when Target is TargetFile.
	// Default: "log.txt" (relative to the working directory)
	FilePath string
	// Timestamp prefixes each line with its UTC capture instant.
	// Default: false
	Timestamp bool
	// SourceRoot is the directory rendered source paths are relative to.
	// Default: "" (working directory of the process)
	SourceRoot string
	// Serialize makes file writes to the same path from this process one at a
	// time, so concurrent lines never interleave.
	// Default: false
	Serialize bool
	// Colorize adds ANSI colors to stderr output.
	// Default: false
	Colorize bool
	// JournalPriority adds the "<N>" syslog priority to stderr output when
	// stderr is connected to the systemd journal.
	// Default: false
	JournalPriority bool
	// OnError observes failed log calls. Failures are never returned to the
	// logging caller.
	// Default: nil (failures are dropped silently)
	OnError func(error)
	// Sink replaces the sink selected by Target.
	// Default: nil
	Sink Sink
	// Now is the clock used for timestamps.
	// Default: time.Now
	Now func() time.Time
}

// Logger composes the level gate, the formatter and a sink. It is safe for
// concurrent use.
type Logger struct {
	sink      Sink
	timestamp bool
	root      string
	clock     *clock
	onError   func(error)
}

// New returns a Logger for config. The sink is resolved here once.
func New(config Config) *Logger {
	l := &Logger{
		sink:      config.Sink,
		timestamp: config.Timestamp,
		root:      config.SourceRoot,
		clock:     newClock(config.Now),
		onError:   config.OnError,
	}
	if l.root == "" {
		l.root = workingDir()
	}
	if l.sink == nil {
		switch config.Target {
		case TargetFile:
			l.sink = NewFileSink(config.FilePath, config.Serialize)
		default:
			l.sink = NewStderrSink(config.Colorize, config.JournalPriority)
		}
	}
	return l
}

// Sink returns the sink l writes to.
func (l *Logger) Sink() Sink {
	return l.sink
}

// Tracef logs a trace message formatted with fmt.Sprintf.
func (l *Logger) Tracef(format string, v ...any) {
	if !Enabled {
		return
	}
	l.output(TraceLevel, "Tracef", format, v...)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	if !Enabled {
		return
	}
	l.output(DebugLevel, "Debugf", format, v...)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	if !Enabled {
		return
	}
	l.output(InfoLevel, "Infof", format, v...)
}

// Warnf logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	if !Enabled {
		return
	}
	l.output(WarnLevel, "Warnf", format, v...)
}

// Errorf logs an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	if !Enabled {
		return
	}
	l.output(ErrorLevel, "Errorf", format, v...)
}

// Critf logs a critical message formatted with fmt.Sprintf.
func (l *Logger) Critf(format string, v ...any) {
	if !Enabled {
		return
	}
	l.output(CritLevel, "Critf", format, v...)
}

// Log logs at level with a location chosen by the caller instead of the
// captured call site.
func (l *Logger) Log(level Level, loc Location, format string, v ...any) {
	if !Enabled {
		return
	}
	l.emit(level, loc, format, v...)
}

// output must be called directly from an entry point: the frame two levels
// up is the user's call.
func (l *Logger) output(level Level, entry, format string, v ...any) {
	l.emit(level, callerLocation(2, entry, l.root), format, v...)
}

func (l *Logger) emit(level Level, loc Location, format string, v ...any) {
	if !level.Valid() {
		l.report(&Error{Kind: KindFormat, Op: "format", Err: fmt.Errorf("invalid level %d", int(level))})
		return
	}
	var t time.Time
	if l.timestamp {
		t = l.clock.Now()
	}
	line, err := Render(level, loc, t, format, v...)
	if err != nil {
		l.report(err)
	}
	if err := l.sink.WriteLine(level, line); err != nil {
		l.report(err)
	}
}

func (l *Logger) report(err error) {
	if l.onError != nil {
		l.onError(err)
	}
}

// --- Package-level logger ---

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(Config{}))
}

// Init replaces the package-level logger. Until it is called, package-level
// functions write plain lines to stderr.
func Init(config Config) {
	std.Store(New(config))
}

// Default returns the package-level logger.
func Default() *Logger {
	return std.Load()
}

// Tracef logs a trace message through the package-level logger.
func Tracef(format string, v ...any) {
	if !Enabled {
		return
	}
	std.Load().output(TraceLevel, "Tracef", format, v...)
}

// Debugf logs a debug message through the package-level logger.
func Debugf(format string, v ...any) {
	if !Enabled {
		return
	}
	std.Load().output(DebugLevel, "Debugf", format, v...)
}

// Infof logs an informational message through the package-level logger.
func Infof(format string, v ...any) {
	if !Enabled {
		return
	}
	std.Load().output(InfoLevel, "Infof", format, v...)
}

// Warnf logs a warning through the package-level logger.
func Warnf(format string, v ...any) {
	if !Enabled {
		return
	}
	std.Load().output(WarnLevel, "Warnf", format, v...)
}

// Errorf logs an error message through the package-level logger.
func Errorf(format string, v ...any) {
	if !Enabled {
		return
	}
	std.Load().output(ErrorLevel, "Errorf", format, v...)
}

// Critf logs a critical message through the package-level logger.
func Critf(format string, v ...any) {
	if !Enabled {
		return
	}
	std.Load().output(CritLevel, "Critf", format, v...)
}
