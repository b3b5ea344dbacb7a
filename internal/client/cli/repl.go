package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	sessionExpired() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	Home(ctx context.Context) error
	Logs(ctx context.Context) error
	Raw(ctx context.Context) error
	Status(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, forgot, help, exit"
	helpMember = "Available commands: home, logs, raw, status, logout, help, exit"
)

// runREPL starts a simple read–eval–print loop for the logdash CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, on context
// cancellation, or when the user types "exit" or "quit".
//
// Prompt & Commands
//
//	Not logged in:
//	  - register       — create an account
//	  - login          — authenticate (asks for a code when MFA is on)
//	  - forgot         — reset a forgotten password
//
//	Logged in:
//	  - home | info    — project information
//	  - logs           — analytics dashboard
//	  - raw            — raw log entries
//	  - status         — session details
//	  - logout         — end the session
//
// Protected commands redirect to login when the session is missing or
// expired. When the background watcher reports an expiry, the next
// iteration starts the login flow before prompting again.
//
// Any errors returned by command handlers are ignored here; handlers
// report to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if a.sessionExpired() {
			_ = a.Login(ctx)
		}

		printlnFn(fmt.Sprintf("logdash %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn(helpMember)
			} else {
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "home", "info":
			_ = a.Home(ctx)

		case "logs":
			_ = a.Logs(ctx)

		case "raw":
			_ = a.Raw(ctx)

		case "status":
			_ = a.Status(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
