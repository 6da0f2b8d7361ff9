package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the shell needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	List(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	SetStatus(ctx context.Context, args []string) error
	Archive(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runShell is the read–eval–print loop of the Judix client.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Commands when not logged in: help, register, login, exit.
// Commands when logged in: list [search terms], filter <status|all>,
// show <id>, create, edit <id>, status <id> <status>, archive <id>,
// delete <id>, whoami, profile, logout, help, exit.
//
// Errors returned by handlers are printed, never fatal: a failed operation
// leaves the loop running.
func runShell(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Judix case management (type 'help' for commands)")
	for {
		printlnFn(fmt.Sprintf("judix %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist [search], filter <status|all>, show <id>, create, edit <id>, status <id> <status>, archive <id>, delete <id>, whoami, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "l", "list":
			err = a.List(ctx, args)

		case "filter":
			err = a.Filter(ctx, args)

		case "show":
			err = a.Show(ctx, args)

		case "create":
			err = a.Create(ctx)

		case "edit":
			err = a.Edit(ctx, args)

		case "status":
			err = a.SetStatus(ctx, args)

		case "archive":
			err = a.Archive(ctx, args)

		case "delete":
			err = a.Delete(ctx, args)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "profile":
			err = a.Profile(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
