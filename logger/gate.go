package logger

// BuildMode is the compile-time build flavor.
type BuildMode int

const (
	// DebugMode is the default build.
	DebugMode BuildMode = iota
	// ReleaseMode is selected with the "release" build tag.
	ReleaseMode
)

func (m BuildMode) String() string {
	if m == ReleaseMode {
		return "release"
	}
	return "debug"
}

// Policy selects which build modes emit log lines.
type Policy int

const (
	// PolicyDebugOnly emits in debug builds and compiles every call out of
	// release builds. It is the default.
	PolicyDebugOnly Policy = iota
	// PolicyAlways emits in every build mode. Selected with the "alwayslog" build tag.
	PolicyAlways
)

func (p Policy) String() string {
	if p == PolicyAlways {
		return "always"
	}
	return "debug-only"
}

// Enabled reports whether the entry points emit anything in this binary.
//
// It is a constant, so a false value turns every entry point into an empty
// function and removes guarded blocks entirely:
//
//	if logger.Enabled {
//		logger.Debug("state %v", expensiveDump())
//	}
//
// Go evaluates call arguments before the call, so the guard above is the way to
// keep an expensive argument expression out of a suppressed build. Without it
// the arguments are evaluated but never formatted.
const Enabled = ActivePolicy == PolicyAlways || Mode == DebugMode
