package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	expired  bool

	calls []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) sessionExpired() bool {
	e := f.expired
	f.expired = false
	return e
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) ForgotPassword(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) Home(ctx context.Context) error   { f.calls = append(f.calls, "home"); return nil }
func (f *fakeExec) Logs(ctx context.Context) error   { f.calls = append(f.calls, "logs"); return nil }
func (f *fakeExec) Raw(ctx context.Context) error    { f.calls = append(f.calls, "raw"); return nil }
func (f *fakeExec) Status(ctx context.Context) error { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

// capturePrints replaces printlnFn for the duration of the test.
func capturePrints(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return &lines
}

func reader(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	capturePrints(t)

	in := reader(
		"help",
		"register",
		"forgot",
		"login",
		"help",
		"home",
		"info",
		"logs",
		"raw",
		"status",
		"foobar",
		"logout",
		"exit",
		"home",
	)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, in)

	want := []string{"register", "forgot", "login", "home", "home", "logs", "raw", "status", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrints(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, reader("help", "quit"))
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "" }, reader("help", "quit"))

	joined := strings.Join(*lines, "\n")
	if !strings.Contains(joined, helpGuest) || !strings.Contains(joined, helpMember) {
		t.Fatalf("help output missing:\n%s", joined)
	}
}

func TestRunREPL_UnknownAndQuit(t *testing.T) {
	lines := capturePrints(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, reader("", "get 42", "quit"))

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	joined := strings.Join(*lines, "\n")
	if !strings.Contains(joined, "Unknown command: get") || !strings.Contains(joined, "Bye!") {
		t.Fatalf("unexpected output:\n%s", joined)
	}
}

func TestRunREPL_ExpiryRedirectsToLogin(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{loggedIn: true, expired: true}
	runREPL(context.Background(), exec, func() string { return "" }, reader("status", "exit"))

	want := []string{"login", "status"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	capturePrints(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, reader("register"))
	if len(exec.calls) != 1 {
		t.Fatalf("last line without newline must run: %v", exec.calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, reader("register", "exit"))
	if len(exec.calls) != 0 {
		t.Fatalf("cancelled REPL must not dispatch: %v", exec.calls)
	}
}
