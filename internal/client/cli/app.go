package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/testdash/internal/client/client"
	"github.com/dmitrijs2005/testdash/internal/client/config"
)

// API is the server surface the CLI drives. *client.Client implements it.
type API interface {
	Register(ctx context.Context, fullName, email, password string) (*client.User, error)
	Login(ctx context.Context, email, password string) (*client.User, error)
	Logout()
	LoggedIn() bool
	Profile(ctx context.Context) (*client.User, error)
	UpdateProfile(ctx context.Context, upd client.ProfileUpdate) (*client.User, error)
	DeleteProfile(ctx context.Context) error
	Stats(ctx context.Context) (*client.Stats, error)
	Activities(ctx context.Context) ([]client.Activity, error)
	CreateActivity(ctx context.Context, in client.ActivityInput) (*client.Activity, error)
	UpdateActivity(ctx context.Context, id int64, in client.ActivityInput) (*client.Activity, error)
	DeleteActivity(ctx context.Context, id int64) error
	Health(ctx context.Context) (*client.Health, error)
}

type App struct {
	api      API
	reader   *bufio.Reader
	out      io.Writer
	userName string
}

func NewApp(c *config.Config) *App {
	return newApp(client.New(c.ServerURL, c.RequestTimeout), os.Stdin, os.Stdout)
}

func newApp(api API, in io.Reader, out io.Writer) *App {
	return &App{api: api, reader: bufio.NewReader(in), out: out}
}

func (a *App) isLoggedIn() bool {
	return a.api.LoggedIn()
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// Run greets the user, reports server reachability and starts the REPL.
func (a *App) Run(ctx context.Context) {
	a.printf("Welcome to testdash CLI (type 'help' for commands)\n")

	if h, err := a.api.Health(ctx); err != nil {
		a.printf("Warning: %v\n", err)
	} else {
		a.printf("Server: %s, database: %s\n", h.Message, h.Database)
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}
