// Package cli provides the cobra command tree and dependency wiring for
// the storeadmin console. This file defines the Dependencies struct
// (composition root) that wires the API client, session store, and UI
// services together.
package cli

import (
	"fmt"
	"net/http"

	"storeadmin/internal/api"
	"storeadmin/internal/config"
	"storeadmin/internal/session"
	"storeadmin/internal/ui"
	"storeadmin/pkg/logger"
)

// Dependencies holds the services used by CLI commands. It is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Config   *config.Config
	Session  *session.Store
	API      *api.Client
	Auth     *api.AuthService
	Users    *api.UserService
	Products *api.ProductService
	Orders   *api.OrderService
	Contacts *api.ContactService
	Logger   *logger.Logger
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
}

// deps is the global dependencies instance, initialized by
// InitDependencies once flags are parsed.
var deps *Dependencies

// InitDependencies loads configuration and wires all services. It is
// called from the root command's PersistentPreRunE so the --config flag
// has already been parsed.
func InitDependencies(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	store, err := session.NewStore(cfg.Session.File)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, store.Token)

	deps = &Dependencies{
		Config:   cfg,
		Session:  store,
		API:      client,
		Auth:     api.NewAuthService(client),
		Users:    api.NewUserService(client),
		Products: api.NewProductService(client),
		Orders:   api.NewOrderService(client),
		Contacts: api.NewContactService(client),
		Logger:   logger.New(logger.Config{Level: cfg.Log.Level, NoColor: cfg.UI.NoColor}),
		Theme:    ui.NewTheme(cfg.UI.NoColor),
		Headless: ui.NewHeadlessManager(),
	}
	return nil
}

// GetDeps returns the current Dependencies instance, or nil before
// InitDependencies has run.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
