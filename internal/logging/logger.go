// Package logging is the structured logger used by the server and its
// components. Callers depend on Logger; SlogLogger is the production backend.
package logging

import "context"

// Logger emits leveled records with alternating key/value attributes:
//
//	logger.Info(ctx, "http server listening", "addr", ":5000")
//
// The context carries request-scoped values to the backend.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a logger that prefixes every record with args,
	// e.g. With("module", "httpapi").
	With(args ...any) Logger
}
