package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/logdash/internal/client/client"
	"github.com/dmitrijs2005/logdash/internal/client/dashboard"
	"github.com/dustin/go-humanize"
)

var errNotLoggedIn = errors.New("not logged in")

// requireSession guards protected views. Without a valid session any stale
// token is dropped and the user goes through login first.
func (a *App) requireSession(ctx context.Context) bool {
	if a.isLoggedIn(ctx) {
		return true
	}
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Warn(ctx, "drop stale session", "error", err)
	}
	a.println("You are not logged in or your session has expired. Please log in.")
	if err := a.login(ctx); err != nil {
		return false
	}
	return a.isLoggedIn(ctx)
}

// Home shows the project information.
func (a *App) Home(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return errNotLoggedIn
	}

	info, err := a.logService.Info(ctx)
	if err != nil {
		a.println("Error: could not load project info:", client.UserMessage(err))
		return err
	}

	w := a.w()
	if email := a.authService.Email(ctx); email != "" {
		fmt.Fprintf(w, "Welcome, %s\n\n", email)
	}
	fmt.Fprintf(w, "%-12s %s\n", "Student:", info.Student.Name)
	fmt.Fprintf(w, "%-12s %s\n", "Grade:", info.Student.Grade)
	fmt.Fprintf(w, "%-12s %s\n", "Group:", info.Student.Group)
	fmt.Fprintf(w, "%-12s %s\n", "Supervisor:", info.Student.Supervisor)
	fmt.Fprintf(w, "%-12s %s\n", "Node.js:", info.NodeVersion)
	if info.Description != "" {
		fmt.Fprintf(w, "\n%s\n", info.Description)
	}
	return nil
}

// Logs renders the analytics dashboard. Nothing is drawn unless all four
// aggregates load.
func (a *App) Logs(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return errNotLoggedIn
	}

	an, err := a.logService.Analytics(ctx)
	if err != nil {
		a.println("Could not load log data:", client.UserMessage(err)+". Please try again.")
		return err
	}
	return dashboard.Render(a.w(), dashboard.Build(an), dashboard.DefaultBarWidth)
}

// Raw prints every log entry as one JSON line.
func (a *App) Raw(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return errNotLoggedIn
	}

	entries, err := a.logService.Logs(ctx)
	if err != nil {
		a.println("Could not load log data:", client.UserMessage(err)+". Please try again.")
		return err
	}

	a.println(humanize.Comma(int64(len(entries))), "log entries")
	for _, e := range entries {
		b, err := json.Marshal(e)
		if err != nil {
			continue
		}
		a.println(string(b))
	}
	return nil
}

// Status shows who is logged in and when the token runs out.
func (a *App) Status(ctx context.Context) error {
	if !a.requireSession(ctx) {
		return errNotLoggedIn
	}

	w := a.w()
	if email := a.authService.Email(ctx); email != "" {
		fmt.Fprintf(w, "%-16s %s\n", "Logged in as:", email)
	}
	if exp, ok := a.watcher.ExpiresAt(ctx); ok {
		fmt.Fprintf(w, "%-16s %s (%s)\n", "Token expires:", exp.Local().Format("2006-01-02 15:04:05"), humanize.Time(exp))
	} else {
		fmt.Fprintf(w, "%-16s %s\n", "Token expires:", "never")
	}

	watch := "stopped"
	if a.watcher.WatcherRunning() {
		watch = fmt.Sprintf("running, every %s", a.config.SessionCheckInterval)
	}
	fmt.Fprintf(w, "%-16s %s\n", "Session check:", watch)
	fmt.Fprintf(w, "%-16s %s\n", "Server:", a.config.ServerBaseURL)
	return nil
}
