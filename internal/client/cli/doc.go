// Package cli provides the interactive testdash command-line client.
//
// It wires configuration, the HTTP API client and a read-eval-print loop.
// Commands mirror the dashboard: register/login/logout, profile management,
// stats and activity CRUD. The session token lives only in memory for the
// lifetime of the process.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits or
// input ends.
package cli
