//go:build !alwayslog

package logger

// ActivePolicy is the gate policy this package was compiled with.
const ActivePolicy = PolicyDebugOnly
