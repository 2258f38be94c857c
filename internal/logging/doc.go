// Package logging builds the slog loggers used across cdinv.
//
// Commands never construct handlers themselves: they receive a logger built
// by New from the resolved configuration, derive component loggers with
// Component, and attach attributes through the helpers in attrs.go so every
// line carries the same keys. NewNop is for tests and for wiring that must
// not fail.
package logging
