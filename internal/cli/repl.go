package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	isGuide() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Google(ctx context.Context) error
	Destinations(ctx context.Context) error
	Tours(ctx context.Context) error
	Apply(ctx context.Context) error
	Bookings(ctx context.Context) error
	Profile(ctx context.Context) error
	Admin(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Logout(ctx context.Context) error
}

func helpText(a execIface) string {
	if !a.isLoggedIn() {
		return "Available commands: register, login, google, destinations, tours, exit"
	}
	cmds := "destinations, tours, apply, bookings, profile, logout, exit"
	if a.isAdmin() {
		cmds = "admin, " + cmds
	}
	if a.isGuide() {
		cmds = "dashboard, " + cmds
	}
	return "Available commands: " + cmds
}

// runREPL reads a line, parses the first token as a command, and dispatches
// to methods on a. Unknown commands are reported back; role-gated commands
// check the role themselves. The loop exits on EOF or "exit"/"quit".
// Handler errors are already surfaced by the handlers, so the loop ignores
// them and stays focused on I/O.
//
// The reader is shared with the prompt helpers, so commands and the answers
// the handlers prompt for come off the same buffer.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("tourmate %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		switch parts[0] {
		case "help":
			printlnFn(helpText(a))

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "google":
			_ = a.Google(ctx)

		case "destinations":
			_ = a.Destinations(ctx)

		case "tours":
			_ = a.Tours(ctx)

		case "apply":
			_ = a.Apply(ctx)

		case "bookings":
			_ = a.Bookings(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", parts[0])
		}
	}
}
