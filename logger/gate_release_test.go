//go:build release && !alwayslog

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingStringer struct{ calls *int }

func (s countingStringer) String() string {
	*s.calls++
	return "evaluated"
}

func TestReleaseBuild_EmitsNothing(t *testing.T) {
	require.False(t, Enabled)
	assert.Equal(t, ReleaseMode, Mode)
	assert.Equal(t, PolicyDebugOnly, ActivePolicy)

	var stderr countingWriter
	old := outStderr
	outStderr = &stderr
	defer func() { outStderr = old }()

	path := filepath.Join(t.TempDir(), "log.txt")
	var reported int
	file := New(Config{Target: TargetFile, FilePath: path, OnError: func(error) { reported++ }})
	console := New(Config{OnError: func(error) { reported++ }})

	var calls int
	arg := countingStringer{calls: &calls}
	for _, log := range []*Logger{file, console} {
		log.Tracef("%v", arg)
		log.Debugf("%v", arg)
		log.Infof("%v", arg)
		log.Warnf("%v", arg)
		log.Errorf("%v", arg)
		log.Critf("%v", arg)
		log.Log(InfoLevel, Location{}, "%v", arg)
	}
	Tracef("%v", arg)
	Debugf("%v", arg)
	Infof("%v", arg)
	Warnf("%v", arg)
	Errorf("%v", arg)
	Critf("%v", arg)

	assert.Zero(t, calls, "arguments were formatted")
	assert.Zero(t, stderr.n, "bytes written to stderr")
	assert.Zero(t, reported)
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "log file was created")
}

func TestReleaseBuild_GuardedArgumentsAreNotEvaluated(t *testing.T) {
	var calls int
	expensive := func() string {
		calls++
		return "dump"
	}

	if Enabled {
		Debugf("state %s", expensive())
	}

	assert.Zero(t, calls)
}

type countingWriter struct{ n int }

func (w *countingWriter) Write(p []byte) (int, error) {
	w.n += len(p)
	return len(p), nil
}
