package cli

import (
	"context"

	"github.com/dmitrijs2005/testdash/internal/client/client"
)

type fakeAPI struct {
	loggedIn bool
	user     client.User
	err      error

	lastUpdate   client.ProfileUpdate
	lastActivity client.ActivityInput
	lastID       int64
	deleted      bool
	activities   []client.Activity
	stats        client.Stats
}

func (f *fakeAPI) Register(_ context.Context, fullName, email, _ string) (*client.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.loggedIn = true
	f.user = client.User{ID: "u1", FullName: fullName, Email: email}
	return &f.user, nil
}

func (f *fakeAPI) Login(_ context.Context, email, _ string) (*client.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.loggedIn = true
	f.user.Email = email
	return &f.user, nil
}

func (f *fakeAPI) Logout()        { f.loggedIn = false }
func (f *fakeAPI) LoggedIn() bool { return f.loggedIn }

func (f *fakeAPI) Profile(context.Context) (*client.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.user, nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, upd client.ProfileUpdate) (*client.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastUpdate = upd
	if upd.Email != "" {
		f.user.Email = upd.Email
	}
	return &f.user, nil
}

func (f *fakeAPI) DeleteProfile(context.Context) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = true
	f.loggedIn = false
	return nil
}

func (f *fakeAPI) Stats(context.Context) (*client.Stats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &f.stats, nil
}

func (f *fakeAPI) Activities(context.Context) ([]client.Activity, error) {
	return f.activities, f.err
}

func (f *fakeAPI) CreateActivity(_ context.Context, in client.ActivityInput) (*client.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastActivity = in
	return &client.Activity{ID: 5, Type: in.Type, Title: in.Title, Time: in.Time, Status: in.Status}, nil
}

func (f *fakeAPI) UpdateActivity(_ context.Context, id int64, in client.ActivityInput) (*client.Activity, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastID = id
	f.lastActivity = in
	return &client.Activity{ID: id, Title: in.Title, Status: in.Status}, nil
}

func (f *fakeAPI) DeleteActivity(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.lastID = id
	return nil
}

func (f *fakeAPI) Health(context.Context) (*client.Health, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &client.Health{Status: "OK", Message: "Test Dashboard API is running", Database: "Connected"}, nil
}
