package cmd

import (
	"database/sql"
	"fmt"

	"github.com/shawnxiao66/aichatbot/internal"
)

// app wires the stores and remote clients for one command invocation
type app struct {
	paths         internal.DataPaths
	cfg           *internal.Config
	db            *sql.DB
	blobs         *internal.BlobStore
	conversations *internal.ConversationStore
	messages      *internal.MessageStore
	cache         *internal.Cache
	catalog       *internal.SupabaseClient
	llm           *internal.DeepSeekClient
	auth          *internal.AuthService
}

// openApp resolves paths, loads config, opens the database, and builds the
// service graph. Callers must Close.
func openApp() (*app, error) {
	paths, err := internal.ResolveDataPaths(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := paths.EnsureDataDir(); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg, err := internal.LoadConfig(paths.ConfigPath)
	if err != nil {
		return nil, err
	}

	db, err := internal.OpenDatabase(paths.DBPath)
	if err != nil {
		return nil, err
	}

	blobs := internal.NewBlobStore(db)
	cache := internal.NewCache()
	catalog := internal.NewSupabaseClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, cache)

	return &app{
		paths:         paths,
		cfg:           cfg,
		db:            db,
		blobs:         blobs,
		conversations: internal.NewConversationStore(blobs),
		messages:      internal.NewMessageStore(blobs),
		cache:         cache,
		catalog:       catalog,
		llm:           internal.NewDeepSeekClient(cfg),
		auth:          internal.NewAuthService(blobs, catalog, cfg),
	}, nil
}

// Close releases the database handle
func (a *app) Close() {
	if err := a.db.Close(); err != nil {
		internal.LogWarn("failed to close database: %v", err)
	}
}

// requireUser returns the logged-in user or a friendly error
func (a *app) requireUser() (internal.User, error) {
	user, ok := a.auth.CurrentUser()
	if !ok {
		return internal.User{}, fmt.Errorf("not logged in (run: aichat login)")
	}
	return user, nil
}
