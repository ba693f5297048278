package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelTags(t *testing.T) {
	want := []string{"TRCE", "DEBG", "INFO", "WARN", "ERRO", "CRIT"}
	levels := AllLevels()
	require.Len(t, levels, len(want))
	for i, level := range levels {
		assert.Equal(t, want[i], level.Tag())
		assert.Len(t, level.Tag(), 4)
	}
	assert.Equal(t, "????", Level(42).Tag())
}

func TestLevelOrder(t *testing.T) {
	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		assert.Less(t, levels[i-1], levels[i])
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"trace":    TraceLevel,
		"TRCE":     TraceLevel,
		"debug":    DebugLevel,
		"DEBG":     DebugLevel,
		" info ":   InfoLevel,
		"warning":  WarnLevel,
		"WARN":     WarnLevel,
		"err":      ErrorLevel,
		"ERRO":     ErrorLevel,
		"critical": CritLevel,
		"crit":     CritLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("fatal")
	assert.Error(t, err)
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "TRACE", TraceLevel.String())
	assert.Equal(t, "CRIT", CritLevel.String())
	assert.Equal(t, "Level(-1)", Level(-1).String())
}
