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
	VerifySession(ctx context.Context) error
	Whoami(ctx context.Context) error
	Admins(ctx context.Context) error
	ShowHeader(ctx context.Context) error
	EditHeader(ctx context.Context) error
	ShowBanner(ctx context.Context) error
	AddBanner(ctx context.Context) error
	ShowHero(ctx context.Context) error
	EditHero(ctx context.Context) error
	ShowFooter(ctx context.Context) error
	EditFooter(ctx context.Context) error
	ListInitiatives(ctx context.Context) error
	AddInitiative(ctx context.Context) error
	EditInitiative(ctx context.Context, args []string) error
	DeleteInitiative(ctx context.Context, args []string) error
	ListEnquiries(ctx context.Context) error
	SetEnquiryStatus(ctx context.Context, args []string) error
	DeleteEnquiry(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the siteadmin CLI.
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
//	  - register       — create an admin account
//	  - login          — authenticate
//	  - verify         — re-check a stored session with the server
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help                     — show available commands
//	  - whoami                   — show the current admin profile
//	  - admins                   — list all admin accounts
//	  - header | setheader       — show / edit the site header
//	  - banner | addbanner       — show / replace the landing banner
//	  - hero | sethero           — show / edit the hero text
//	  - footer | setfooter       — show / edit the footer
//	  - initiatives | addinit    — list / add initiatives
//	  - setinit <id>             — edit an initiative
//	  - rminit <id>              — delete an initiative
//	  - enquiries                — list enquiries
//	  - enqstatus <id> <status>  — set an enquiry status (new|read|resolved)
//	  - rmenq <id>               — delete an enquiry
//	  - upload <filename>        — presign an image upload
//	  - logout                   — log out
//	  - exit | quit              — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("siteadmin %s> ", statusFn()))
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
				printlnFn("Available commands: whoami, admins, header, setheader, banner, addbanner, hero, sethero, footer, setfooter, initiatives, addinit, setinit, rminit, enquiries, enqstatus, rmenq, upload, logout, exit")
			} else {
				printlnFn("Available commands: register, login, verify, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "verify":
			_ = a.VerifySession(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "admins":
			_ = a.Admins(ctx)

		case "header":
			_ = a.ShowHeader(ctx)

		case "setheader":
			_ = a.EditHeader(ctx)

		case "banner":
			_ = a.ShowBanner(ctx)

		case "addbanner":
			_ = a.AddBanner(ctx)

		case "hero":
			_ = a.ShowHero(ctx)

		case "sethero":
			_ = a.EditHero(ctx)

		case "footer":
			_ = a.ShowFooter(ctx)

		case "setfooter":
			_ = a.EditFooter(ctx)

		case "initiatives":
			_ = a.ListInitiatives(ctx)

		case "addinit":
			_ = a.AddInitiative(ctx)

		case "setinit":
			_ = a.EditInitiative(ctx, args)

		case "rminit":
			_ = a.DeleteInitiative(ctx, args)

		case "enquiries":
			_ = a.ListEnquiries(ctx)

		case "enqstatus":
			_ = a.SetEnquiryStatus(ctx, args)

		case "rmenq":
			_ = a.DeleteEnquiry(ctx, args)

		case "upload":
			_ = a.Upload(ctx, args)

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
