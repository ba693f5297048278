package logger

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/coreos/go-systemd/v22/journal"
)

// DefaultFilePath is the file target used when Config.FilePath is empty.
const DefaultFilePath = "log.txt"

// Sink writes one formatted line per call and appends the newline itself.
type Sink interface {
	WriteLine(level Level, line string) error
}

// Dependency injection points for testing outputs.
var (
	outStderr       io.Writer = os.Stderr
	stderrIsJournal           = journal.StderrIsJournalStream
)

// stderrMu keeps lines from different goroutines whole on the stderr writer.
var stderrMu sync.Mutex

// StderrSink writes lines to the process's standard error.
type StderrSink struct {
	colorize bool
	priority bool
}

// NewStderrSink returns a stderr sink. colorize wraps each line in the ANSI
// color of its level. journalPriority prefixes lines with the syslog "<N>"
// priority, but only when stderr is connected to the systemd journal.
func NewStderrSink(colorize, journalPriority bool) *StderrSink {
	s := &StderrSink{colorize: colorize}
	if journalPriority {
		if ok, err := stderrIsJournal(); err == nil && ok {
			s.priority = true
		}
	}
	return s
}

// WriteLine implements Sink.
func (s *StderrSink) WriteLine(level Level, line string) error {
	buf := make([]byte, 0, len(line)+16)
	if s.priority {
		buf = append(buf, '<')
		buf = strconv.AppendInt(buf, int64(journalPriority(level)), 10)
		buf = append(buf, '>')
	}
	if s.colorize {
		buf = append(buf, levelColor(level)...)
		buf = append(buf, line...)
		buf = append(buf, colorReset...)
	} else {
		buf = append(buf, line...)
	}
	buf = append(buf, '\n')

	stderrMu.Lock()
	defer stderrMu.Unlock()
	if _, err := outStderr.Write(buf); err != nil {
		return &Error{Kind: KindIO, Op: "write", Err: err}
	}
	return nil
}

const colorReset = "\033[0m"

func levelColor(level Level) string {
	switch level {
	case TraceLevel:
		return "\033[90m"
	case DebugLevel:
		return "\033[36m"
	case InfoLevel:
		return "\033[32m"
	case WarnLevel:
		return "\033[33m"
	case ErrorLevel:
		return "\033[31m"
	case CritLevel:
		return "\033[91m"
	default:
		return ""
	}
}

func journalPriority(level Level) journal.Priority {
	switch level {
	case InfoLevel:
		return journal.PriInfo
	case WarnLevel:
		return journal.PriWarning
	case ErrorLevel:
		return journal.PriErr
	case CritLevel:
		return journal.PriCrit
	default:
		return journal.PriDebug
	}
}

// FileSink appends lines to a file. Every write opens the file in append
// mode, writes through a buffer sized to the whole line, flushes and closes,
// so no handle outlives the call and the file is never truncated.
type FileSink struct {
	path string
	mu   *sync.Mutex
}

// NewFileSink returns a sink appending to path, or to DefaultFilePath when
// path is empty. With serialize set, writes to the same path from this process
// are made one at a time.
func NewFileSink(path string, serialize bool) *FileSink {
	if path == "" {
		path = DefaultFilePath
	}
	s := &FileSink{path: path}
	if serialize {
		s.mu = pathLock(path)
	}
	return s
}

// Path returns the file target.
func (s *FileSink) Path() string {
	return s.path
}

// WriteLine implements Sink.
func (s *FileSink) WriteLine(_ Level, line string) (err error) {
	if s.mu != nil {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return &Error{Kind: KindIO, Op: "open", Path: s.path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &Error{Kind: KindIO, Op: "close", Path: s.path, Err: cerr}
		}
	}()

	// One buffer for the whole line keeps it to a single append write.
	w := bufio.NewWriterSize(f, len(line)+1)
	if _, err := w.WriteString(line); err != nil {
		return &Error{Kind: KindIO, Op: "write", Path: s.path, Err: err}
	}
	if err := w.WriteByte('\n'); err != nil {
		return &Error{Kind: KindIO, Op: "write", Path: s.path, Err: err}
	}
	if err := w.Flush(); err != nil {
		return &Error{Kind: KindIO, Op: "flush", Path: s.path, Err: err}
	}
	return nil
}

var fileLocks sync.Map // absolute path -> *sync.Mutex

func pathLock(path string) *sync.Mutex {
	key := path
	if abs, err := filepath.Abs(path); err == nil {
		key = abs
	}
	mu, _ := fileLocks.LoadOrStore(key, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
