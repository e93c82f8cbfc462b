package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/hydroforum/internal/client/models"
	"github.com/dmitrijs2005/hydroforum/internal/client/session"
	"github.com/dmitrijs2005/hydroforum/internal/client/store"
	"github.com/dmitrijs2005/hydroforum/internal/client/view"
	"github.com/dmitrijs2005/hydroforum/internal/common"
	"github.com/dmitrijs2005/hydroforum/internal/logging"
	"github.com/go-playground/validator/v10"
)

const (
	msgRegistered   = "Registration successful!"
	msgLoggedIn     = "Login successful!"
	msgLoggedOut    = "Logged out."
	msgTopicCreated = "Topic created!"
)

type credentialsForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type registrationForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
	Confirm  string `validate:"required"`
}

// Controller owns the running forum session. It turns commands into store
// and session calls, records notices and re-renders the topic list.
// It is not safe for concurrent use; commands run one at a time.
type Controller struct {
	store    *store.Store
	session  *session.Manager
	renderer view.Renderer
	viewOpts view.Options
	notices  *NoticeBoard
	validate *validator.Validate
	log      logging.Logger
	out      io.Writer
	now      func() time.Time

	errTTL time.Duration
	okTTL  time.Duration
}

type ControllerOptions struct {
	Renderer   view.Renderer
	View       view.Options
	Logger     logging.Logger
	Out        io.Writer
	Clock      func() time.Time
	NoticeTTL  time.Duration
	SuccessTTL time.Duration
}

func NewController(st *store.Store, sm *session.Manager, opts ControllerOptions) *Controller {
	c := &Controller{
		store:    st,
		session:  sm,
		renderer: opts.Renderer,
		viewOpts: opts.View,
		notices:  &NoticeBoard{},
		validate: validator.New(),
		log:      opts.Logger,
		out:      opts.Out,
		now:      opts.Clock,
		errTTL:   opts.NoticeTTL,
		okTTL:    opts.SuccessTTL,
	}
	if c.renderer == nil {
		c.renderer = view.NewTableRenderer(c.viewOpts)
	}
	if c.log == nil {
		c.log = logging.Nop()
	}
	if c.out == nil {
		c.out = io.Discard
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.errTTL <= 0 {
		c.errTTL = 5 * time.Second
	}
	if c.okTTL <= 0 {
		c.okTTL = 3 * time.Second
	}
	return c
}

// Dispatch runs cmd to completion. User-facing failures are posted as
// notices and returned; other errors are logged as well.
func (c *Controller) Dispatch(ctx context.Context, cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}
	ctx = logging.ContextWith(ctx, "command", cmd.commandName())
	c.log.Debug(ctx, "dispatch")

	switch cmd := cmd.(type) {
	case Login:
		return c.report(ctx, FormLogin, c.login(ctx, cmd))
	case Register:
		return c.report(ctx, FormRegister, c.register(ctx, cmd))
	case Logout:
		return c.report(ctx, FormLogin, c.logout(ctx))
	case SetFilter:
		c.session.SetFilter(strings.TrimSpace(cmd.Category))
		return c.report(ctx, FormList, c.Render())
	case CreateTopic:
		return c.report(ctx, FormTopic, c.createTopic(ctx, cmd))
	case ViewTopic:
		return c.report(ctx, FormView, c.viewTopic(ctx, cmd))
	case Render:
		return c.report(ctx, FormList, c.Render())
	default:
		return fmt.Errorf("unsupported command %T", cmd)
	}
}

// Render writes the topic list for the active filter.
func (c *Controller) Render() error {
	return c.renderer.Render(c.out, c.store.Topics(c.session.Filter()))
}

func (c *Controller) login(ctx context.Context, cmd Login) error {
	form := credentialsForm{Username: strings.TrimSpace(cmd.Username), Password: cmd.Password}
	if err := c.check(form); err != nil {
		return err
	}

	u, err := c.store.LoginUser(ctx, form.Username, form.Password)
	if err != nil {
		return err
	}
	if err := c.session.SignIn(ctx, u); err != nil {
		return err
	}

	c.log.Info(ctx, "user logged in", "user_id", u.ID, "username", u.Username)
	c.success(FormLogin, msgLoggedIn)
	return nil
}

func (c *Controller) register(ctx context.Context, cmd Register) error {
	if cmd.Password != cmd.Confirm {
		return common.ErrPasswordMismatch
	}
	form := registrationForm{Username: strings.TrimSpace(cmd.Username), Password: cmd.Password, Confirm: cmd.Confirm}
	if err := c.check(form); err != nil {
		return err
	}

	u, err := c.store.RegisterUser(ctx, form.Username, form.Password)
	if err != nil {
		return err
	}
	if err := c.session.SignIn(ctx, u); err != nil {
		// The account is stored; only the session write failed.
		return fmt.Errorf("account %q was created but signing in failed, please log in: %w", u.Username, err)
	}

	c.log.Info(ctx, "user registered", "user_id", u.ID, "username", u.Username)
	c.success(FormRegister, msgRegistered)
	return nil
}

func (c *Controller) logout(ctx context.Context) error {
	u, ok := c.session.Current()
	if !ok {
		return nil
	}
	if err := c.session.SignOut(ctx); err != nil {
		return err
	}
	c.log.Info(ctx, "user logged out", "user_id", u.ID)
	c.success(FormLogin, msgLoggedOut)
	return nil
}

func (c *Controller) createTopic(ctx context.Context, cmd CreateTopic) error {
	u, ok := c.session.Current()
	if !ok {
		return common.ErrNotAuthenticated
	}

	in := models.NewTopic{
		Title:    strings.TrimSpace(cmd.Title),
		Category: strings.TrimSpace(cmd.Category),
		Content:  strings.TrimSpace(cmd.Content),
		Author:   u.Username,
	}
	if err := c.check(in); err != nil {
		return err
	}

	t, err := c.store.CreateTopic(ctx, in)
	if err != nil {
		return err
	}

	c.log.Info(ctx, "topic created", "topic_id", t.ID, "category", t.Category)
	c.success(FormTopic, msgTopicCreated)
	return c.Render()
}

func (c *Controller) viewTopic(ctx context.Context, cmd ViewTopic) error {
	if err := c.store.IncrementViews(ctx, cmd.ID); err != nil {
		return err
	}
	t, ok := c.store.Topic(cmd.ID)
	if !ok {
		return fmt.Errorf("%w: %d", common.ErrTopicNotFound, cmd.ID)
	}
	return view.RenderTopic(c.out, t, c.viewOpts)
}

// check runs struct validation and folds failures into
// ErrMissingRequiredField, naming the empty fields.
func (c *Controller) check(form any) error {
	err := c.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fmt.Errorf("%w: %s", common.ErrMissingRequiredField, strings.Join(fields, ", "))
}

func (c *Controller) report(ctx context.Context, form string, err error) error {
	if err == nil {
		return nil
	}
	if common.IsUserFacing(err) {
		c.log.Warn(ctx, "command rejected", "form", form, "error", err)
	} else {
		c.log.Error(ctx, "command failed", "form", form, "error", err)
	}
	c.notices.Post(Notice{
		Form:      form,
		Kind:      NoticeError,
		Text:      err.Error(),
		ExpiresAt: c.now().Add(c.errTTL),
	})
	return err
}

func (c *Controller) success(form, text string) {
	c.notices.Post(Notice{
		Form:      form,
		Kind:      NoticeSuccess,
		Text:      text,
		ExpiresAt: c.now().Add(c.okTTL),
	})
}

// Notices exposes the board for the REPL and tests.
func (c *Controller) Notices() *NoticeBoard {
	return c.notices
}

// CurrentUser returns the signed-in user, if any.
func (c *Controller) CurrentUser() (models.User, bool) {
	return c.session.Current()
}

func (c *Controller) Filter() string {
	return c.session.Filter()
}

func (c *Controller) Now() time.Time {
	return c.now()
}
