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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Verify(ctx context.Context, link string) error
	Browse(ctx context.Context) error
	ShowProfile(ctx context.Context, id string) error
	EditProfile(ctx context.Context) error
	Chat(ctx context.Context, profileID string) error
	Notifications(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Matcha CLI.
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
//	  - register       — create an account
//	  - login          — authenticate
//	  - forgot         — request a password-reset link
//	  - reset          — confirm a reset with the mailed link
//	  - verify <link>  — confirm an e-mail verification link
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - whoami         — show the current account
//	  - browse         — list matching profiles
//	  - profile [id]   — show a profile (own profile without id)
//	  - edit           — edit the own profile
//	  - chat <id>      — open the conversation with a profile
//	  - notifications  — show the activity feed
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("matcha> %s > ", statusFn()))
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
				printlnFn("Available commands: whoami, (b)rowse, profile [id], edit, chat <id>, (n)otifications, logout, exit")
			} else {
				printlnFn("Available commands: register, login, forgot, reset, verify <link>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "forgot":
			_ = a.Forgot(ctx)

		case "reset", "resetpassword":
			_ = a.Reset(ctx)

		case "verify":
			if len(args) == 0 {
				printlnFn("Usage: verify <link>")
				continue
			}
			_ = a.Verify(ctx, args[0])

		case "b", "browse":
			_ = a.Browse(ctx)

		case "profile":
			id := ""
			if len(args) > 0 {
				id = args[0]
			}
			_ = a.ShowProfile(ctx, id)

		case "edit":
			_ = a.EditProfile(ctx)

		case "chat":
			if len(args) == 0 {
				printlnFn("Usage: chat <profile id>")
				continue
			}
			_ = a.Chat(ctx, args[0])

		case "n", "notifications":
			_ = a.Notifications(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
