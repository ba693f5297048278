//go:build release

package logger

// Mode is the build mode this package was compiled in.
const Mode = ReleaseMode
