package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	calls []string
	arg   string
}

func (f *fakeExec) rec(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Home(context.Context) error    { return f.rec("home") }
func (f *fakeExec) Menus(context.Context) error   { return f.rec("menus") }
func (f *fakeExec) Refresh(context.Context) error { return f.rec("refresh") }
func (f *fakeExec) Select(_ context.Context, arg string) error {
	f.arg = arg
	return f.rec("select")
}
func (f *fakeExec) Back(context.Context) error    { return f.rec("back") }
func (f *fakeExec) Buy(context.Context) error     { return f.rec("buy") }
func (f *fakeExec) Track(context.Context) error   { return f.rec("track") }
func (f *fakeExec) Profile(context.Context) error { return f.rec("profile") }
func (f *fakeExec) Edit(context.Context) error    { return f.rec("edit") }
func (f *fakeExec) Dismiss(context.Context) error { return f.rec("dismiss") }
func (f *fakeExec) Permission(_ context.Context, granted bool) error {
	if granted {
		return f.rec("allow")
	}
	return f.rec("deny")
}
func (f *fakeExec) Pause(context.Context) error  { return f.rec("pause") }
func (f *fakeExec) Resume(context.Context) error { return f.rec("resume") }
func (f *fakeExec) Stats(context.Context) error  { return f.rec("stats") }

// capture collects printlnFn output; the order watcher prints from its own
// goroutine.
type capture struct {
	mu    sync.Mutex
	lines []string
}

func (c *capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(c.lines, "\n")
}

func silence(t *testing.T) *capture {
	t.Helper()
	c := &capture{}
	origPrint := printlnFn
	printlnFn = func(a ...any) (int, error) {
		s := strings.TrimSpace(fmt.Sprintln(a...))
		c.mu.Lock()
		c.lines = append(c.lines, s)
		c.mu.Unlock()
		return len(s), nil
	}
	t.Cleanup(func() { printlnFn = origPrint })
	return c
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"allow",
		"menus",
		"select 3",
		"back",
		"s 4",
		"buy",
		"ok",
		"track",
		"profile",
		"edit",
		"deny",
		"refresh",
		"pause",
		"resume",
		"home",
		"stats",
		"foobar",
		"",
		"exit",
		"menus",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input))

	require.Equal(t, []string{
		"allow", "menus", "select", "back", "select", "buy", "dismiss", "track",
		"profile", "edit", "deny", "refresh", "pause", "resume", "home", "stats",
	}, exec.calls)
	require.Equal(t, "4", exec.arg)
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	out := silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("select\nquit\n")))

	require.Empty(t, exec.calls)
	require.Contains(t, out.String(), "Usage: select <id>")
	require.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_LastLineWithoutNewline(t *testing.T) {
	silence(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewReader(strings.NewReader("home\nmenus")))

	require.Equal(t, []string{"home", "menus"}, exec.calls)
}
