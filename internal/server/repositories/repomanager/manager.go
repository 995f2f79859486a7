// Package repomanager selects the credential store backend and hands out
// repositories bound to it.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/testdash/internal/server/repositories/users"
)

// RepositoryManager owns the storage backend for user records.
type RepositoryManager interface {
	// Kind names the backend ("memory" or "postgres").
	Kind() string
	RunMigrations(ctx context.Context) error
	Ping(ctx context.Context) error
	Users() users.Repository
	// WithTx runs fn with a repository whose calls form one unit of work.
	// Postgres wraps them in a transaction; memory serializes them.
	WithTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error
	Close() error
}

// New returns a Postgres manager when dsn is set and a memory manager
// otherwise.
func New(ctx context.Context, dsn string) (RepositoryManager, error) {
	if dsn == "" {
		return NewMemoryRepositoryManager(), nil
	}
	return OpenPostgresRepositoryManager(ctx, dsn)
}
