package logger

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Record is a single log call, built and consumed within that call.
type Record struct {
	Level    Level
	Message  string
	Location Location
	// Time is the capture instant. The zero value renders the plain line shape.
	Time time.Time
}

// Format renders rec as one line without the trailing newline.
//
//	TRCE: text 42,42,42 [main.go 23:5]
//	[2022-07-10 06:49:33.646393648 UTC] DEBG: text 42,42,24 [main.go 23:5]
func Format(rec Record) string {
	var b strings.Builder
	b.Grow(len(rec.Message) + len(rec.Location.File) + 64)
	if !rec.Time.IsZero() {
		b.WriteByte('[')
		b.WriteString(FormatTime(rec.Time))
		b.WriteString("] ")
	}
	b.WriteString(rec.Level.Tag())
	b.WriteString(": ")
	b.WriteString(rec.Message)
	b.WriteString(" [")
	b.WriteString(rec.Location.File)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(rec.Location.Line))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(rec.Location.Column))
	b.WriteByte(']')
	return b.String()
}

// FormatTime renders t in UTC as "2006-01-02 15:04:05.999 UTC". The fraction is
// omitted for whole seconds and otherwise printed with 3, 6 or 9 digits,
// whichever is the shortest exact form.
func FormatTime(t time.Time) string {
	t = t.UTC()
	layout := "2006-01-02 15:04:05"
	switch ns := t.Nanosecond(); {
	case ns == 0:
	case ns%1_000_000 == 0:
		layout += ".000"
	case ns%1_000 == 0:
		layout += ".000000"
	default:
		layout += ".000000000"
	}
	return t.Format(layout) + " UTC"
}

// Sprintf formats a message like fmt.Sprintf after checking that the verbs of
// format consume exactly the given arguments. On a mismatch it returns a
// KindFormat error and a fallback message made of the raw template followed by
// the raw arguments.
func Sprintf(format string, args ...any) (string, error) {
	if err := checkArgs(format, len(args)); err != nil {
		return rawMessage(format, args), &Error{Kind: KindFormat, Op: "format", Err: fmt.Errorf("%q: %w", format, err)}
	}
	if len(args) == 0 && strings.IndexByte(format, '%') < 0 {
		return format, nil
	}
	return fmt.Sprintf(format, args...), nil
}

// Render builds the full line for a call: message, tag, location and, when t
// is non-zero, the timestamp.
func Render(level Level, loc Location, t time.Time, format string, args ...any) (string, error) {
	msg, err := Sprintf(format, args...)
	return Format(Record{Level: level, Message: msg, Location: loc, Time: t}), err
}

func rawMessage(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return format + " " + strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// checkArgs walks format the way fmt does and reports whether its verbs use
// exactly n arguments. Explicit indexes ("%[2]v") disable the extra-argument
// check, as in fmt.
func checkArgs(format string, n int) error {
	argNum := 0
	reordered := false
	end := len(format)
	for i := 0; i < end; {
		if format[i] != '%' {
			i++
			continue
		}
		i++

		for i < end && strings.IndexByte("#0+- ", format[i]) >= 0 {
			i++
		}

		var err error
		// width
		if argNum, i, err = argIndex(format, i, argNum, n, &reordered); err != nil {
			return err
		}
		if i < end && format[i] == '*' {
			if argNum >= n {
				return errMissingArgs
			}
			argNum++
			i++
		} else {
			i = skipDigits(format, i)
		}

		// precision
		if i < end && format[i] == '.' {
			i++
			if argNum, i, err = argIndex(format, i, argNum, n, &reordered); err != nil {
				return err
			}
			if i < end && format[i] == '*' {
				if argNum >= n {
					return errMissingArgs
				}
				argNum++
				i++
			} else {
				i = skipDigits(format, i)
			}
		}

		if argNum, i, err = argIndex(format, i, argNum, n, &reordered); err != nil {
			return err
		}
		if i >= end {
			return errNoVerb
		}
		verb, size := utf8.DecodeRuneInString(format[i:])
		i += size
		if verb == '%' {
			continue
		}
		if argNum >= n {
			return errMissingArgs
		}
		argNum++
	}
	if !reordered && argNum < n {
		return errExtraArgs
	}
	return nil
}

// argIndex parses an optional "[n]" at format[i:].
func argIndex(format string, i, argNum, n int, reordered *bool) (int, int, error) {
	if i >= len(format) || format[i] != '[' {
		return argNum, i, nil
	}
	closing := strings.IndexByte(format[i:], ']')
	if closing < 0 {
		return argNum, i, errBadIndex
	}
	idx, err := strconv.Atoi(format[i+1 : i+closing])
	if err != nil || idx < 1 || idx > n {
		return argNum, i, fmt.Errorf("%w %q", errBadIndex, format[i:i+closing+1])
	}
	*reordered = true
	return idx - 1, i + closing + 1, nil
}

func skipDigits(s string, i int) int {
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
