package services

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/dmitrijs2005/testdash/internal/common"
	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/repositories/activities"
)

// DefaultActivityTime labels an activity created without a time.
const DefaultActivityTime = "just now"

const maxTitleLength = 200

type ActivityService struct {
	repo   activities.Repository
	logger logging.Logger
}

func NewActivityService(repo activities.Repository, logger logging.Logger) *ActivityService {
	return &ActivityService{repo: repo, logger: logger.With("module", "activities")}
}

func activityTypeRule() validation.Rule {
	allowed := make([]interface{}, len(models.ActivityTypes))
	for i, t := range models.ActivityTypes {
		allowed[i] = t
	}
	return validation.In(allowed...)
}

func activityStatusRule() validation.Rule {
	allowed := make([]interface{}, len(models.ActivityStatuses))
	for i, st := range models.ActivityStatuses {
		allowed[i] = st
	}
	return validation.In(allowed...)
}

func (s *ActivityService) List(ctx context.Context) ([]models.Activity, error) {
	return s.repo.List(ctx)
}

// Create validates a and stores it under a freshly assigned id.
func (s *ActivityService) Create(ctx context.Context, a models.Activity) (models.Activity, error) {
	if a.Time == "" {
		a.Time = DefaultActivityTime
	}

	err := validation.ValidateStruct(&a,
		validation.Field(&a.Type, validation.Required, activityTypeRule()),
		validation.Field(&a.Title, validation.Required, validation.Length(1, maxTitleLength)),
		validation.Field(&a.Status, validation.Required, activityStatusRule()),
	)
	if err != nil {
		return models.Activity{}, common.NewValidationError(err)
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return models.Activity{}, err
	}
	s.logger.Info(ctx, "activity created", "activity_id", created.ID)
	return created, nil
}

// Update merges the non-empty fields of patch into activity id.
func (s *ActivityService) Update(ctx context.Context, id int64, patch models.ActivityPatch) (models.Activity, error) {
	err := validation.ValidateStruct(&patch,
		validation.Field(&patch.Type, activityTypeRule()),
		validation.Field(&patch.Title, validation.Length(1, maxTitleLength)),
		validation.Field(&patch.Status, activityStatusRule()),
	)
	if err != nil {
		return models.Activity{}, common.NewValidationError(err)
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return models.Activity{}, err
	}
	s.logger.Info(ctx, "activity updated", "activity_id", id)
	return updated, nil
}

func (s *ActivityService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info(ctx, "activity deleted", "activity_id", id)
	return nil
}
