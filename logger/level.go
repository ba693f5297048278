package logger

import (
	"fmt"
	"strings"
)

// Level defines log severity.
type Level int

const (
	// TraceLevel is the most verbose level.
	TraceLevel Level = iota
	// DebugLevel is for diagnostic messages.
	DebugLevel
	// InfoLevel is for informational messages.
	InfoLevel
	// WarnLevel is for warnings.
	WarnLevel
	// ErrorLevel is for errors.
	ErrorLevel
	// CritLevel is for critical failures.
	CritLevel
)

var levelTags = [...]string{"TRCE", "DEBG", "INFO", "WARN", "ERRO", "CRIT"}

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "CRIT"}

// AllLevels returns all supported levels in order of increasing urgency.
func AllLevels() []Level {
	return []Level{
		TraceLevel,
		DebugLevel,
		InfoLevel,
		WarnLevel,
		ErrorLevel,
		CritLevel,
	}
}

// Valid reports whether l is one of the six known levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= CritLevel
}

// Tag returns the fixed four character tag written at the start of every line.
func (l Level) Tag() string {
	if !l.Valid() {
		return "????"
	}
	return levelTags[l]
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name or tag (case-insensitive).
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE", "TRCE":
		return TraceLevel, nil
	case "DEBUG", "DEBG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERRO", "ERR":
		return ErrorLevel, nil
	case "CRIT", "CRITICAL":
		return CritLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}
