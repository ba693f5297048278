package logger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Plain(t *testing.T) {
	line := Format(Record{
		Level:    TraceLevel,
		Message:  "text 42,42,42",
		Location: Location{File: "src/main.rs", Line: 23, Column: 5},
	})
	assert.Equal(t, "TRCE: text 42,42,42 [src/main.rs 23:5]", line)
}

func TestFormat_Timestamped(t *testing.T) {
	line := Format(Record{
		Level:    DebugLevel,
		Message:  "text 42,42,24",
		Location: Location{File: "src/main.rs", Line: 23, Column: 5},
		Time:     time.Date(2022, 7, 10, 6, 49, 33, 646393648, time.UTC),
	})
	assert.Equal(t, "[2022-07-10 06:49:33.646393648 UTC] DEBG: text 42,42,24 [src/main.rs 23:5]", line)
}

func TestFormatTime(t *testing.T) {
	base := time.Date(2022, 7, 10, 6, 49, 33, 0, time.UTC)
	cases := []struct {
		nanos int
		want  string
	}{
		{0, "2022-07-10 06:49:33 UTC"},
		{646_000_000, "2022-07-10 06:49:33.646 UTC"},
		{646_393_000, "2022-07-10 06:49:33.646393 UTC"},
		{646_393_648, "2022-07-10 06:49:33.646393648 UTC"},
		{1, "2022-07-10 06:49:33.000000001 UTC"},
	}
	for _, tc := range cases {
		got := FormatTime(base.Add(time.Duration(tc.nanos)))
		assert.Equal(t, tc.want, got)
	}
}

func TestFormatTime_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+3", 3*60*60)
	got := FormatTime(time.Date(2022, 7, 10, 9, 49, 33, 0, zone))
	assert.Equal(t, "2022-07-10 06:49:33 UTC", got)
}

func TestSprintf(t *testing.T) {
	cases := []struct {
		name    string
		format  string
		args    []any
		want    string
		wantErr bool
	}{
		{name: "positional", format: "text %[1]v,%[1]v,%[2]v", args: []any{42, 24}, want: "text 42,42,24"},
		{name: "sequential", format: "text %v,%v,%v", args: []any{42, 24, "42"}, want: "text 42,24,42"},
		{name: "rune", format: "text %[1]v,%[2]c,%[3]v", args: []any{42, 'a', "422"}, want: "text 42,a,422"},
		{name: "reordered", format: "%[2]v-%[1]v", args: []any{"a", "b"}, want: "b-a"},
		{name: "literal percent", format: "100%%", want: "100%"},
		{name: "plain text", format: "no verbs", want: "no verbs"},
		{name: "star width", format: "[%*d]", args: []any{4, 7}, want: "[   7]"},
		{name: "precision", format: "%.2f", args: []any{3.14159}, want: "3.14"},
		{name: "flags", format: "%-4d|%+d", args: []any{1, 2}, want: "1   |+2"},
		{name: "missing", format: "a %d %d", args: []any{1}, want: "a %d %d 1", wantErr: true},
		{name: "missing none", format: "a %s", want: "a %s", wantErr: true},
		{name: "extra", format: "a %d", args: []any{1, 2}, want: "a %d 1 2", wantErr: true},
		{name: "extra no verbs", format: "text", args: []any{"x"}, want: "text x", wantErr: true},
		{name: "bad index", format: "%[3]v", args: []any{1}, want: "%[3]v 1", wantErr: true},
		{name: "unterminated index", format: "%[1v", args: []any{1}, want: "%[1v 1", wantErr: true},
		{name: "dangling percent", format: "50%", want: "50%", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Sprintf(tc.format, tc.args...)
			assert.Equal(t, tc.want, got)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, IsKind(err, KindFormat), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	loc := Location{File: "cmd/app/main.go", Line: 10, Column: 2}
	frozen := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
	format, args := "user %v logged in from %v", []any{"ada", "10.0.0.1"}

	first, err := Render(InfoLevel, loc, frozen, format, args...)
	require.NoError(t, err)
	second, err := Render(InfoLevel, loc, frozen, format, args...)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "[2024-01-02 03:04:05.000006 UTC] INFO: user ada logged in from 10.0.0.1 [cmd/app/main.go 10:2]", first)
}

func TestRender_FormatErrorStillRenders(t *testing.T) {
	format, args := "%d of %d", []any{3}
	line, err := Render(WarnLevel, Location{File: "a.go", Line: 1, Column: 1}, time.Time{}, format, args...)
	require.Error(t, err)
	assert.Equal(t, "WARN: %d of %d 3 [a.go 1:1]", line)
}
