package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Home(ctx context.Context) error
	Menus(ctx context.Context) error
	Refresh(ctx context.Context) error
	Select(ctx context.Context, arg string) error
	Back(ctx context.Context) error
	Buy(ctx context.Context) error
	Track(ctx context.Context) error
	Profile(ctx context.Context) error
	Edit(ctx context.Context) error
	Dismiss(ctx context.Context) error
	Permission(ctx context.Context, granted bool) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stats(ctx context.Context) error
}

const helpText = `Available commands:
  home            go to the home screen
  menus           list menus near you
  refresh         reload the menu list
  select <id>     show a menu
  back            back to the menu list
  buy             order the menu on screen
  track           follow your last order
  profile         show your profile
  edit            fill in the profile form
  ok              dismiss the alert on screen
  allow | deny    answer the location permission prompt
  pause | resume  send the app to the background and back
  stats           show request and cache counters, cached images
  exit | quit     leave the program`

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("food %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "home":
			_ = a.Home(ctx)

		case "menus", "m":
			_ = a.Menus(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "select", "s":
			if len(parts) < 2 {
				printlnFn("Usage: select <id>")
				continue
			}
			_ = a.Select(ctx, parts[1])

		case "back":
			_ = a.Back(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "track":
			_ = a.Track(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "ok", "dismiss":
			_ = a.Dismiss(ctx)

		case "allow":
			_ = a.Permission(ctx, true)

		case "deny":
			_ = a.Permission(ctx, false)

		case "pause":
			_ = a.Pause(ctx)

		case "resume":
			_ = a.Resume(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
