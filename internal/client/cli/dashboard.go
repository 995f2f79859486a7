package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/testdash/internal/client/client"
)

var errBadID = errors.New("activity id must be a positive integer")

func (a *App) Stats(ctx context.Context) error {
	st, err := a.api.Stats(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Total tests\t%d\n", st.TotalTests)
	fmt.Fprintf(tw, "Passed\t%d\n", st.PassedTests)
	fmt.Fprintf(tw, "Failed\t%d\n", st.FailedTests)
	fmt.Fprintf(tw, "Success rate\t%s\n", st.SuccessRate)
	fmt.Fprintf(tw, "Users\t%d\n", st.TotalUsers)
	fmt.Fprintf(tw, "Active users\t%d\n", st.ActiveUsers)
	return tw.Flush()
}

func (a *App) ListActivity(ctx context.Context) error {
	items, err := a.api.Activities(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		a.printf("No activity\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tTITLE\tTIME\tSTATUS")
	for _, it := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.ID, it.Type, it.Title, it.Time, it.Status)
	}
	return tw.Flush()
}

func (a *App) AddActivity(ctx context.Context) error {
	in, err := a.promptActivity("")
	if err != nil {
		return err
	}

	created, err := a.api.CreateActivity(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Created activity %d\n", created.ID)
	return nil
}

// UpdateActivity takes the id from args or asks for it; empty answers leave
// fields unchanged.
func (a *App) UpdateActivity(ctx context.Context, args []string) error {
	id, err := a.activityID(args)
	if err != nil {
		return err
	}

	in, err := a.promptActivity(" (empty to keep)")
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateActivity(ctx, id, in)
	if err != nil {
		return err
	}
	a.printf("Updated activity %d: %s [%s]\n", updated.ID, updated.Title, updated.Status)
	return nil
}

func (a *App) DeleteActivity(ctx context.Context, args []string) error {
	id, err := a.activityID(args)
	if err != nil {
		return err
	}

	if err := a.api.DeleteActivity(ctx, id); err != nil {
		return err
	}
	a.printf("Deleted activity %d\n", id)
	return nil
}

func (a *App) promptActivity(suffix string) (client.ActivityInput, error) {
	var in client.ActivityInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Type: test|create|update|delete" + suffix, &in.Type},
		{"Title" + suffix, &in.Title},
		{"Time label, e.g. '2 hours ago'" + suffix, &in.Time},
		{"Status: passed|failed|pending|running|completed" + suffix, &in.Status},
	}
	for _, f := range fields {
		v, err := GetSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return client.ActivityInput{}, err
		}
		*f.dst = v
	}
	return in, nil
}

func (a *App) activityID(args []string) (int64, error) {
	raw := ""
	if len(args) > 0 {
		raw = args[0]
	} else {
		v, err := GetSimpleText(a.reader, "Activity id", a.out)
		if err != nil {
			return 0, err
		}
		raw = v
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}
