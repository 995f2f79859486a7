package client

type User struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type Activity struct {
	ID     int64  `json:"id"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

type Stats struct {
	TotalTests  int    `json:"totalTests"`
	PassedTests int    `json:"passedTests"`
	FailedTests int    `json:"failedTests"`
	SuccessRate string `json:"successRate"`
	TotalUsers  int    `json:"totalUsers"`
	ActiveUsers int    `json:"activeUsers"`
}

// ProfileUpdate fields left empty are not sent.
type ProfileUpdate struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// ActivityInput fields left empty are not sent.
type ActivityInput struct {
	Type   string `json:"type,omitempty"`
	Title  string `json:"title,omitempty"`
	Time   string `json:"time,omitempty"`
	Status string `json:"status,omitempty"`
}

type Health struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Database  string `json:"database"`
	Timestamp string `json:"timestamp"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type userResponse struct {
	User User `json:"user"`
}

type activityListResponse struct {
	Data []Activity `json:"data"`
}

type activityResponse struct {
	Data Activity `json:"data"`
}

type activityUpdateResponse struct {
	UpdatedData Activity `json:"updatedData"`
}

type errorResponse struct {
	Message string `json:"message"`
}
