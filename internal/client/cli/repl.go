package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. App implements
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
	DeleteProfile(ctx context.Context) error
	Stats(ctx context.Context) error
	ListActivity(ctx context.Context) error
	AddActivity(ctx context.Context) error
	UpdateActivity(ctx context.Context, args []string) error
	DeleteActivity(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: profile, update-profile, delete-profile, stats, activity, " +
		"add-activity, update-activity [id], delete-activity [id], logout, exit"
)

// runREPL reads one command per line from reader and dispatches it until
// "exit"/"quit" or end of input. Command errors are printed and the loop
// carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "testdash %s> ", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, helpLoggedIn)
			} else {
				fmt.Fprintln(out, helpLoggedOut)
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "profile":
			cmdErr = a.Profile(ctx)
		case "update-profile":
			cmdErr = a.UpdateProfile(ctx)
		case "delete-profile":
			cmdErr = a.DeleteProfile(ctx)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "activity", "l", "list":
			cmdErr = a.ListActivity(ctx)
		case "add-activity":
			cmdErr = a.AddActivity(ctx)
		case "update-activity":
			cmdErr = a.UpdateActivity(ctx, args)
		case "delete-activity":
			cmdErr = a.DeleteActivity(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "Error:", cmdErr)
		}
	}
}
