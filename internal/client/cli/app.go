package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"

	"remindme/internal/client/api"
	"remindme/internal/client/config"
	"remindme/internal/client/services"
	"remindme/internal/client/session"
	"remindme/internal/logging"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	session   services.Session
	auth      services.AuthService
	friends   services.FriendService
	reminders services.ReminderService
	picker    *services.Picker
	profile   services.ProfileService
	log       logging.Logger

	userName string
	reader   *bufio.Reader
	in       io.Reader
	out      io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "error initializing session database", "err", err)
		return nil, err
	}

	store := session.NewStore(db)
	if err := store.Load(ctx); err != nil {
		// A broken or expired stored session just means the user logs in again.
		log.Warn(ctx, "stored session not restored", "err", err)
	}

	gw := api.NewGateway(c.BaseURL, c.HTTPTimeout, store, log)

	a := &App{
		config:    c,
		db:        db,
		session:   store,
		auth:      services.NewAuthService(gw, store, log),
		friends:   services.NewFriendService(gw, store, log),
		reminders: services.NewReminderService(gw, store, log, c.PageSize),
		picker:    services.NewPicker(services.NewCategoryService(gw)),
		profile:   services.NewProfileService(gw, store, log),
		log:       log,
		in:        os.Stdin,
		out:       os.Stdout,
	}
	a.reader = bufio.NewReader(os.Stdin)

	if u, err := store.CurrentUser(ctx); err == nil {
		a.userName = u.Name
	}
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}
