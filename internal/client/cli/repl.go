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
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Search(ctx context.Context) error
	Select(ctx context.Context, args []string) error
	Book(ctx context.Context) error
	Bookings(ctx context.Context) error
	Reports(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the rentctl CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - search         — search vehicle availability
//	  - select <n>     — pick one of the search results
//	  - book           — submit a booking
//	  - bookings       — refresh and show your bookings
//	  - reports        — load admin reports (ADMIN role only)
//	  - logout         — close the session
//	  - exit | quit    — leave the program
//
// The REPL runs every command to completion before reading the next line,
// so two submissions of the same form can never be in flight at once. Any
// errors returned by command handlers are ignored here; handlers notify the
// user themselves. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("rentctl %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				help := "Available commands: search, select <n>, book, bookings, logout, exit"
				if a.isAdmin() {
					help = "Available commands: search, select <n>, book, bookings, reports, logout, exit"
				}
				printlnFn(help)
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "search":
			_ = a.Search(ctx)

		case "select":
			_ = a.Select(ctx, args)

		case "book":
			_ = a.Book(ctx)

		case "bookings":
			_ = a.Bookings(ctx)

		case "reports":
			_ = a.Reports(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
