package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/hydroforum/internal/common"
)

// getSimpleText, getMultiline and getPassword are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Register prompts for a username and the password twice and dispatches a
// Register command. The raw input buffers are zeroed before returning; the
// strings handed to the controller are not.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFd, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	confirm, err := getPassword(a.reader, a.ttyFd, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	return a.ctrl.Dispatch(ctx, Register{
		Username: username,
		Password: string(password),
		Confirm:  string(confirm),
	})
}

func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.ttyFd, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.ctrl.Dispatch(ctx, Login{Username: username, Password: string(password)})
}

func (a *App) Logout(ctx context.Context) error {
	return a.ctrl.Dispatch(ctx, Logout{})
}

// NewTopic collects title, category and a multi-line body. Anonymous users
// are rejected before any prompt is shown.
func (a *App) NewTopic(ctx context.Context) error {
	if !a.isLoggedIn() {
		return a.ctrl.Dispatch(ctx, CreateTopic{})
	}

	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	if cats := a.store.Categories(); len(cats) > 0 {
		fmt.Fprintf(a.out, "Known categories: %s\n", strings.Join(cats, ", "))
	}
	category, err := getSimpleText(a.reader, "Enter category", a.out)
	if err != nil {
		return err
	}
	content, err := getMultiline(a.reader, "Enter content", a.out)
	if err != nil {
		return err
	}

	return a.ctrl.Dispatch(ctx, CreateTopic{Title: title, Category: category, Content: content})
}

func (a *App) List(ctx context.Context) error {
	return a.ctrl.Dispatch(ctx, Render{})
}

// Filter sets the category filter; an empty category shows all topics.
func (a *App) Filter(ctx context.Context, category string) error {
	return a.ctrl.Dispatch(ctx, SetFilter{Category: category})
}

// View shows the topic with the given id and counts the view.
func (a *App) View(ctx context.Context, arg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid topic id %q\n", arg)
		return err
	}
	return a.ctrl.Dispatch(ctx, ViewTopic{ID: id})
}

func (a *App) WhoAmI(_ context.Context) error {
	u, ok := a.ctrl.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}
	fmt.Fprintf(a.out, "%s (id %d, registered %s)\n", u.Username, u.ID, u.RegisteredAt.Local().Format("02.01.2006 15:04"))
	return nil
}

func (a *App) Categories(_ context.Context) error {
	cats := a.store.Categories()
	if len(cats) == 0 {
		fmt.Fprintln(a.out, "No categories yet")
		return nil
	}
	for _, c := range cats {
		fmt.Fprintln(a.out, c)
	}
	return nil
}

// showNotices prints notices that have not been shown yet.
func (a *App) showNotices() {
	printNotices(a.out, a.ctrl.Notices().Unseen(a.ctrl.Now()))
}

func printNotices(w io.Writer, notices []Notice) {
	for _, n := range notices {
		switch n.Kind {
		case NoticeSuccess:
			fmt.Fprintf(w, "[ok] %s\n", n.Text)
		default:
			fmt.Fprintf(w, "[%s] %s\n", n.Form, n.Text)
		}
	}
}
