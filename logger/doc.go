// Package logger provides a minimal leveled logger that tags every line with
// its severity and the source location of the logging call, and writes it to
// standard error or appends it to a file.
//
// # Line Format
//
// Plain lines:
//
//	TRCE: text 42,42,42 [main.go 23:2]
//
// With Config.Timestamp, prefixed by the UTC capture instant:
//
//	[2022-07-10 06:49:33.646393648 UTC] DEBG: text 42,42,24 [main.go 23:2]
//
// The tags are TRCE, DEBG, INFO, WARN, ERRO and CRIT. The location is the
// call expression that invoked the entry point; its path is relative to
// Config.SourceRoot (the working directory by default). The column is read
// from the source file and is 0 when the source is not available at run time.
//
// # Build Modes
//
// Whether anything is logged is decided at compile time:
//
//	go build                          # debug build, all levels emit
//	go build -tags release            # every call compiles to nothing
//	go build -tags release,alwayslog  # release build that still logs
//
// See Enabled for keeping expensive arguments out of suppressed builds.
//
// # Usage
//
// Log through the package-level logger, which writes to stderr until Init is
// called:
//
//	logger.Init(logger.Config{Target: logger.TargetFile})
//	a := 42
//	logger.Debugf("text %[1]v,%[1]v,%[2]v", a, 24)
//
// Or build an independent Logger:
//
//	log := logger.New(logger.Config{Target: logger.TargetFile, FilePath: "app.log", Timestamp: true})
//	log.Warnf("disk usage at %d%%", 91)
//
// # Files
//
// A file target is opened in append mode, written, flushed and closed on every
// call; no handle is kept. The logger never truncates: a program that wants a
// fresh file truncates it before logging. Config.Serialize adds a per-path
// lock for programs that log to one file from many goroutines.
//
// # Failures
//
// Log calls never return errors and never panic on I/O failures. Template and
// argument mismatches still log, with the raw template and arguments as the
// message. Set Config.OnError to observe both kinds of failure.
package logger
