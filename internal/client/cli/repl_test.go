package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) WhoAmI(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Forgot(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) Reset(ctx context.Context) error {
	f.calls = append(f.calls, "reset")
	return nil
}
func (f *fakeExec) Verify(ctx context.Context, link string) error {
	f.calls = append(f.calls, "verify")
	f.arg = link
	return nil
}
func (f *fakeExec) Browse(ctx context.Context) error {
	f.calls = append(f.calls, "browse")
	return nil
}
func (f *fakeExec) ShowProfile(ctx context.Context, id string) error {
	f.calls = append(f.calls, "profile")
	f.arg = id
	return nil
}
func (f *fakeExec) EditProfile(ctx context.Context) error {
	f.calls = append(f.calls, "edit")
	return nil
}
func (f *fakeExec) Chat(ctx context.Context, profileID string) error {
	f.calls = append(f.calls, "chat")
	f.arg = profileID
	return nil
}
func (f *fakeExec) Notifications(ctx context.Context) error {
	f.calls = append(f.calls, "notifications")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"browse",
		"profile p42",
		"chat p42",
		"notifications",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "browse", "profile", "chat", "notifications"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "p42" {
		t.Fatalf("argument not passed through: %q", exec.arg)
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("chat\nverify\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_ShortAliases(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("b\nn\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 2 || exec.calls[0] != "browse" || exec.calls[1] != "notifications" {
		t.Fatalf("alias dispatch mismatch: %v", exec.calls)
	}
}
