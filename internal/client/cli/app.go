package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/matcha/internal/client/app"
	"github.com/dmitrijs2005/matcha/internal/client/config"
	"github.com/dmitrijs2005/matcha/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/matcha/internal/client/services"
	"github.com/dmitrijs2005/matcha/internal/client/storage"
	"github.com/dmitrijs2005/matcha/internal/logging"
)

type App struct {
	config *config.Config
	root   *app.Root
	log    logging.Logger

	browseService       services.BrowseService
	profileService      services.ProfileService
	chatService         services.ChatService
	notificationService services.NotificationService

	reader *bufio.Reader
}

// NewApp opens the local token database and assembles the stores and
// services around it. The session starts Unknown; Run resolves it.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to open local database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	creds := credentials.NewSQLiteRepository(db)
	root := app.New(cfg, creds, log)

	browse := services.NewBrowseService(root.Gateway, cfg.BrowseCacheTTL)

	return &App{
		config:              cfg,
		root:                root,
		log:                 log,
		browseService:       browse,
		profileService:      services.NewProfileService(root.Gateway, cfg.BrowseCacheTTL, browse),
		chatService:         services.NewChatService(root.Gateway),
		notificationService: services.NewNotificationService(root.Gateway),
		reader:              bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores a stored session and drops into the REPL. It blocks
// until the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) {
	a.root.Bootstrap(ctx)
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return app.Decide(a.root.Session.State(), "").Allow
}

// requireAuth is the command-side gate for protected operations. It
// mirrors what route guarding does in a graphical client: anything not
// authenticated is bounced back to the entry commands.
func (a *App) requireAuth() bool {
	d := app.Decide(a.root.Session.State(), "")
	if !d.Allow {
		printlnFn("Please login first (redirecting to " + d.RedirectTo + ")")
	}
	return d.Allow
}
