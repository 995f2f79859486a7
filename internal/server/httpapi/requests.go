package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dmitrijs2005/testdash/internal/server/models"
	"github.com/dmitrijs2005/testdash/internal/server/services"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) input() services.RegisterInput {
	return services.RegisterInput{FullName: r.FullName, Email: r.Email, Password: r.Password}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileUpdateRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r profileUpdateRequest) update() models.ProfileUpdate {
	return models.ProfileUpdate{FullName: r.FullName, Email: r.Email, Password: r.Password}
}

type activityRequest struct {
	Type   models.ActivityType   `json:"type"`
	Title  string                `json:"title"`
	Time   string                `json:"time"`
	Status models.ActivityStatus `json:"status"`
}

func (r activityRequest) activity() models.Activity {
	return models.Activity{Type: r.Type, Title: r.Title, Time: r.Time, Status: r.Status}
}

func (r activityRequest) patch() models.ActivityPatch {
	return models.ActivityPatch{Type: r.Type, Title: r.Title, Time: r.Time, Status: r.Status}
}

// decodeJSON reads a JSON body into dst. An empty body leaves dst zeroed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
