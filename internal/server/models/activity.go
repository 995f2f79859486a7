package models

// ActivityType classifies a dashboard activity.
type ActivityType string

const (
	ActivityTest   ActivityType = "test"
	ActivityCreate ActivityType = "create"
	ActivityUpdate ActivityType = "update"
	ActivityDelete ActivityType = "delete"
)

// ActivityTypes lists every valid ActivityType.
var ActivityTypes = []ActivityType{ActivityTest, ActivityCreate, ActivityUpdate, ActivityDelete}

// ActivityStatus is the outcome shown next to an activity.
type ActivityStatus string

const (
	StatusPassed    ActivityStatus = "passed"
	StatusFailed    ActivityStatus = "failed"
	StatusPending   ActivityStatus = "pending"
	StatusRunning   ActivityStatus = "running"
	StatusCompleted ActivityStatus = "completed"
)

// ActivityStatuses lists every valid ActivityStatus.
var ActivityStatuses = []ActivityStatus{StatusPassed, StatusFailed, StatusPending, StatusRunning, StatusCompleted}

// Activity is one row of the dashboard's recent-activity list. Time is a
// display label ("2 hours ago") and is never recomputed.
type Activity struct {
	ID     int64          `json:"id"`
	Type   ActivityType   `json:"type"`
	Title  string         `json:"title"`
	Time   string         `json:"time"`
	Status ActivityStatus `json:"status"`
}

// ActivityPatch holds the fields to merge into an existing Activity.
// Empty fields keep the current value.
type ActivityPatch struct {
	Type   ActivityType   `json:"type"`
	Title  string         `json:"title"`
	Time   string         `json:"time"`
	Status ActivityStatus `json:"status"`
}

// Apply merges the non-empty fields of p into a and returns the result.
func (p ActivityPatch) Apply(a Activity) Activity {
	if p.Type != "" {
		a.Type = p.Type
	}
	if p.Title != "" {
		a.Title = p.Title
	}
	if p.Time != "" {
		a.Time = p.Time
	}
	if p.Status != "" {
		a.Status = p.Status
	}
	return a
}

// IsEmpty reports whether p would change nothing.
func (p ActivityPatch) IsEmpty() bool {
	return p == ActivityPatch{}
}
