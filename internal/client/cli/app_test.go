package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/testdash/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp feeds input line by line; password prompts read from the same
// stream because the test process is not attached to a terminal.
func newTestApp(t *testing.T, api *fakeAPI, input string) (*App, *bytes.Buffer) {
	t.Helper()
	withTerminal(t, false, nil, nil)
	out := &bytes.Buffer{}
	return newApp(api, strings.NewReader(input), out), out
}

func TestApp_RegisterSetsStatus(t *testing.T) {
	api := &fakeAPI{}
	a, out := newTestApp(t, api, "Jane Doe\njane@example.com\nsecret1\n")

	require.NoError(t, a.Register(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(jane@example.com) ", a.getStatus())
	assert.Contains(t, out.String(), "Registered and logged in as Jane Doe")
}

func TestApp_LoginError(t *testing.T) {
	api := &fakeAPI{err: &client.APIError{Status: 400, Message: "Invalid email or password"}}
	a, _ := newTestApp(t, api, "jane@example.com\nwrong\n")

	err := a.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, "", a.getStatus())
}

func TestApp_LogoutClearsStatus(t *testing.T) {
	api := &fakeAPI{user: client.User{FullName: "Jane", Email: "jane@example.com"}}
	a, _ := newTestApp(t, api, "jane@example.com\npw\n")

	require.NoError(t, a.Login(context.Background()))
	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())
}

func TestApp_UpdateProfileKeepsEmptyFields(t *testing.T) {
	api := &fakeAPI{loggedIn: true, user: client.User{Email: "old@example.com"}}
	a, _ := newTestApp(t, api, "\nnew@example.com\n\n")

	require.NoError(t, a.UpdateProfile(context.Background()))
	assert.Equal(t, client.ProfileUpdate{Email: "new@example.com"}, api.lastUpdate)
	assert.Equal(t, "(new@example.com) ", a.getStatus())
}

func TestApp_DeleteProfileRequiresConfirmation(t *testing.T) {
	api := &fakeAPI{loggedIn: true}
	a, _ := newTestApp(t, api, "no\n")

	require.EqualError(t, a.DeleteProfile(context.Background()), "cancelled")
	assert.False(t, api.deleted)

	a, out := newTestApp(t, api, "yes\n")
	require.NoError(t, a.DeleteProfile(context.Background()))
	assert.True(t, api.deleted)
	assert.Contains(t, out.String(), "Account deleted")
}

func TestApp_Stats(t *testing.T) {
	api := &fakeAPI{stats: client.Stats{TotalTests: 4, PassedTests: 3, FailedTests: 1, SuccessRate: "75%", TotalUsers: 2, ActiveUsers: 1}}
	a, out := newTestApp(t, api, "")

	require.NoError(t, a.Stats(context.Background()))
	assert.Contains(t, out.String(), "75%")
	assert.Contains(t, out.String(), "Total tests")
}

func TestApp_ListActivity(t *testing.T) {
	api := &fakeAPI{activities: []client.Activity{
		{ID: 1, Type: "test", Title: "Login Functionality Test", Time: "2 hours ago", Status: "passed"},
	}}
	a, out := newTestApp(t, api, "")

	require.NoError(t, a.ListActivity(context.Background()))
	assert.Contains(t, out.String(), "Login Functionality Test")

	api.activities = nil
	out.Reset()
	require.NoError(t, a.ListActivity(context.Background()))
	assert.Equal(t, "No activity\n", out.String())
}

func TestApp_AddActivity(t *testing.T) {
	api := &fakeAPI{}
	a, out := newTestApp(t, api, "test\nSmoke\n\npending\n")

	require.NoError(t, a.AddActivity(context.Background()))
	assert.Equal(t, client.ActivityInput{Type: "test", Title: "Smoke", Status: "pending"}, api.lastActivity)
	assert.Contains(t, out.String(), "Created activity 5")
}

func TestApp_UpdateActivityWithArg(t *testing.T) {
	api := &fakeAPI{}
	a, _ := newTestApp(t, api, "\n\n\nfailed\n")

	require.NoError(t, a.UpdateActivity(context.Background(), []string{"2"}))
	assert.Equal(t, int64(2), api.lastID)
	assert.Equal(t, client.ActivityInput{Status: "failed"}, api.lastActivity)
}

func TestApp_DeleteActivity(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		input   string
		wantID  int64
		wantErr error
	}{
		{name: "from args", args: []string{"3"}, wantID: 3},
		{name: "prompted", input: "4\n", wantID: 4},
		{name: "not a number", args: []string{"abc"}, wantErr: errBadID},
		{name: "zero", args: []string{"0"}, wantErr: errBadID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			a, _ := newTestApp(t, api, tt.input)

			err := a.DeleteActivity(context.Background(), tt.args)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, api.lastID)
		})
	}
}

func TestApp_RunReportsServerAndExits(t *testing.T) {
	api := &fakeAPI{}
	a, out := newTestApp(t, api, "exit\n")

	a.Run(context.Background())
	assert.Contains(t, out.String(), "database: Connected")
	assert.Contains(t, out.String(), "Bye!")
}

func TestApp_RunWarnsWhenServerDown(t *testing.T) {
	api := &fakeAPI{err: errors.New("server unavailable")}
	a, out := newTestApp(t, api, "")

	a.Run(context.Background())
	assert.Contains(t, out.String(), "Warning: server unavailable")
}
