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
	args  [][]string
}

func (f *fakeExec) record(name string, args ...string) {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.record("register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.record("login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) VerifySession(ctx context.Context) error { f.record("verify"); return nil }
func (f *fakeExec) Whoami(ctx context.Context) error        { f.record("whoami"); return nil }
func (f *fakeExec) Admins(ctx context.Context) error        { f.record("admins"); return nil }
func (f *fakeExec) ShowHeader(ctx context.Context) error    { f.record("header"); return nil }
func (f *fakeExec) EditHeader(ctx context.Context) error    { f.record("setheader"); return nil }
func (f *fakeExec) ShowBanner(ctx context.Context) error    { f.record("banner"); return nil }
func (f *fakeExec) AddBanner(ctx context.Context) error     { f.record("addbanner"); return nil }
func (f *fakeExec) ShowHero(ctx context.Context) error      { f.record("hero"); return nil }
func (f *fakeExec) EditHero(ctx context.Context) error      { f.record("sethero"); return nil }
func (f *fakeExec) ShowFooter(ctx context.Context) error    { f.record("footer"); return nil }
func (f *fakeExec) EditFooter(ctx context.Context) error    { f.record("setfooter"); return nil }
func (f *fakeExec) ListInitiatives(ctx context.Context) error {
	f.record("initiatives")
	return nil
}
func (f *fakeExec) AddInitiative(ctx context.Context) error { f.record("addinit"); return nil }
func (f *fakeExec) EditInitiative(ctx context.Context, args []string) error {
	f.record("setinit", args...)
	return nil
}
func (f *fakeExec) DeleteInitiative(ctx context.Context, args []string) error {
	f.record("rminit", args...)
	return nil
}
func (f *fakeExec) ListEnquiries(ctx context.Context) error { f.record("enquiries"); return nil }
func (f *fakeExec) SetEnquiryStatus(ctx context.Context, args []string) error {
	f.record("enqstatus", args...)
	return nil
}
func (f *fakeExec) DeleteEnquiry(ctx context.Context, args []string) error {
	f.record("rmenq", args...)
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, args []string) error {
	f.record("upload", args...)
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.record("logout")
	f.loggedIn = false
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
		"header",
		"initiatives",
		"enqstatus 12 read",
		"setinit 7",
		"rminit 7",
		"admins",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "header", "initiatives", "enqstatus", "setinit", "rminit", "admins", "logout"}
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
}

func TestRunREPL_ArgsArePassedThrough(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("enqstatus 42 resolved\nupload logo.png\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 2 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if exec.args[0][0] != "42" || exec.args[0][1] != "resolved" {
		t.Fatalf("enqstatus args: %v", exec.args[0])
	}
	if exec.args[1][0] != "logo.png" {
		t.Fatalf("upload args: %v", exec.args[1])
	}
}

func TestRunREPL_EmptyLineAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
