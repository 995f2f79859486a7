// Package activities holds the dashboard's recent-activity records. The data
// lives in process memory only and resets on restart.
package activities

import (
	"context"

	"github.com/dmitrijs2005/testdash/internal/server/models"
)

// Repository is the activity store contract. Get, Update and Delete return
// common.ErrorNotFound for an unknown id.
type Repository interface {
	List(ctx context.Context) ([]models.Activity, error)
	Get(ctx context.Context, id int64) (models.Activity, error)
	Create(ctx context.Context, a models.Activity) (models.Activity, error)
	Update(ctx context.Context, id int64, patch models.ActivityPatch) (models.Activity, error)
	Delete(ctx context.Context, id int64) error
}

// DefaultSeed is the sample data a fresh server starts with.
func DefaultSeed() []models.Activity {
	return []models.Activity{
		{ID: 1, Type: models.ActivityTest, Title: "Login Functionality Test", Time: "2 hours ago", Status: models.StatusPassed},
		{ID: 2, Type: models.ActivityTest, Title: "Payment Integration Test", Time: "5 hours ago", Status: models.StatusFailed},
		{ID: 3, Type: models.ActivityTest, Title: "API Endpoint Validation", Time: "1 day ago", Status: models.StatusPassed},
		{ID: 4, Type: models.ActivityTest, Title: "Mobile Responsive Test", Time: "2 days ago", Status: models.StatusPassed},
	}
}
