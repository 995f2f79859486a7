package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/activities"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/repomanager"
)

// Stats are the dashboard figures, derived on every call.
type Stats struct {
	TotalTests  int    `json:"totalTests"`
	PassedTests int    `json:"passedTests"`
	FailedTests int    `json:"failedTests"`
	SuccessRate string `json:"successRate"`
	TotalUsers  int    `json:"totalUsers"`
	ActiveUsers int    `json:"activeUsers"`
}

type StatsService struct {
	repomanager  repomanager.RepositoryManager
	activities   activities.Repository
	activeWindow time.Duration
	now          func() time.Time
}

// NewStatsService counts a user as active when they logged in within
// activeWindow, normally the session token lifetime.
func NewStatsService(m repomanager.RepositoryManager, repo activities.Repository, activeWindow time.Duration) *StatsService {
	return &StatsService{
		repomanager:  m,
		activities:   repo,
		activeWindow: activeWindow,
		now:          time.Now,
	}
}

func (s *StatsService) Stats(ctx context.Context) (Stats, error) {
	items, err := s.activities.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	for _, a := range items {
		if a.Type != models.ActivityTest {
			continue
		}
		st.TotalTests++
		switch a.Status {
		case models.StatusPassed:
			st.PassedTests++
		case models.StatusFailed:
			st.FailedTests++
		}
	}
	st.SuccessRate = successRate(st.PassedTests, st.TotalTests)

	repo := s.repomanager.Users()
	if st.TotalUsers, err = repo.Count(ctx); err != nil {
		return Stats{}, err
	}
	if st.ActiveUsers, err = repo.CountActiveSince(ctx, s.now().Add(-s.activeWindow)); err != nil {
		return Stats{}, err
	}

	return st, nil
}

func successRate(passed, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(passed)*100/float64(total))))
}
