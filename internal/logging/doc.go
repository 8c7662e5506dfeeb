// Package logging assembles structured slog loggers for reelmatch.
//
// It owns the console (key=value) and JSON handlers, maps configured levels,
// and can tee output into a JSON log file. Context helpers attach per-query
// correlation IDs so every line emitted while answering one recommendation
// request can be grouped. A no-op logger is provided for tests and wiring
// code that cannot fail.
package logging
