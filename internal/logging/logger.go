// Package logging defines the structured logger used by every client
// component. Collaborators receive a Logger through their constructors and
// never reach for a global.
package logging

import "context"

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Warn(ctx, "image prewarm failed", "mid", mid, "err", err)
type Logger interface {
	// Debug logs verbose diagnostics (request URLs, cache decisions).
	Debug(ctx context.Context, msg string, args ...any)
	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)
	// Warn logs a non-fatal degradation: the operation continues with a default.
	Warn(ctx context.Context, msg string, args ...any)
	// Error logs a failure that escalated to the user.
	Error(ctx context.Context, msg string, args ...any)
	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}
