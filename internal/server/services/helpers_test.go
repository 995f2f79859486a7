package services

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/auth"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestUserService(t *testing.T) (*UserService, *repomanager.MemoryRepositoryManager, *fakeClock) {
	t.Helper()

	clock := &fakeClock{t: time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)}
	tokens, err := auth.NewTokenService([]byte("test-secret"), 24*time.Hour, auth.WithClock(clock.Now))
	if err != nil {
		t.Fatalf("NewTokenService error: %v", err)
	}

	rm := repomanager.NewMemoryRepositoryManager()
	s := NewUserService(rm, auth.NewPasswordHasher(bcrypt.MinCost), tokens, 6, logging.NewNopLogger())
	s.now = clock.Now
	return s, rm, clock
}
