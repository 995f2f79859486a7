package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/testdash/internal/logging"
	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/services"
	"github.com/gorilla/mux"
)

type ActivityService interface {
	List(ctx context.Context) ([]models.Activity, error)
	Create(ctx context.Context, a models.Activity) (models.Activity, error)
	Update(ctx context.Context, id int64, patch models.ActivityPatch) (models.Activity, error)
	Delete(ctx context.Context, id int64) error
}

type StatsService interface {
	Stats(ctx context.Context) (services.Stats, error)
}

type DashboardHandler struct {
	activities ActivityService
	stats      StatsService
	logger     logging.Logger
}

func NewDashboardHandler(activities ActivityService, stats StatsService, logger logging.Logger) *DashboardHandler {
	return &DashboardHandler{activities: activities, stats: stats, logger: logger}
}

// Stats handles GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgServerError)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{
		"totalTests":  st.TotalTests,
		"passedTests": st.PassedTests,
		"failedTests": st.FailedTests,
		"successRate": st.SuccessRate,
		"totalUsers":  st.TotalUsers,
		"activeUsers": st.ActiveUsers,
	})
}

// ListActivity handles GET /api/dashboard/activity.
func (h *DashboardHandler) ListActivity(w http.ResponseWriter, r *http.Request) {
	items, err := h.activities.List(r.Context())
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgActivityNotFound)
		return
	}
	if items == nil {
		items = []models.Activity{}
	}
	writeSuccess(w, http.StatusOK, envelope{"data": items})
}

// CreateActivity handles POST /api/dashboard/activity.
func (h *DashboardHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	created, err := h.activities.Create(r.Context(), req.activity())
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgActivityNotFound)
		return
	}

	writeSuccess(w, http.StatusCreated, envelope{"message": "Activity created successfully", "data": created})
}

// UpdateActivity handles PUT /api/dashboard/activity/{id}.
func (h *DashboardHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := activityID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidActivityID)
		return
	}

	var req activityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidBody)
		return
	}

	updated, err := h.activities.Update(r.Context(), id, req.patch())
	if err != nil {
		writeServiceError(w, r, h.logger, err, msgActivityNotFound)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"message": "Activity updated successfully", "updatedData": updated})
}

// DeleteActivity handles DELETE /api/dashboard/activity/{id}.
func (h *DashboardHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := activityID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, msgInvalidActivityID)
		return
	}

	if err := h.activities.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.logger, err, msgActivityNotFound)
		return
	}

	writeSuccess(w, http.StatusOK, envelope{"message": "Activity deleted successfully"})
}

func activityID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
