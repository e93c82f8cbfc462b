package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// App satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	showNotices()
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	NewTopic(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context, category string) error
	View(ctx context.Context, id string) error
	WhoAmI(ctx context.Context) error
	Categories(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: register, login, (l)ist, filter [category], view <id>, categories, exit"
	helpMember = "Available commands: new, (l)ist, filter [category], view <id>, categories, whoami, logout, exit"
)

// runREPL reads commands from reader until EOF, "exit"/"quit" or ctx
// cancellation. The prompt shows statusFn. Command errors are not fatal:
// user-facing ones arrive as notices, which are printed after every command.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(w, "forum> %s > ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, rest := parts[0], strings.TrimSpace(strings.TrimPrefix(line, parts[0]))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpMember)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "new":
			_ = a.NewTopic(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "filter":
			_ = a.Filter(ctx, rest)

		case "view":
			if rest == "" {
				fmt.Fprintln(w, "Usage: view <id>")
				continue
			}
			_ = a.View(ctx, rest)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
		a.showNotices()
	}
}
