package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/earshot-tools/earshot/internal/config"
	"github.com/earshot-tools/earshot/internal/forensic"
	"github.com/earshot-tools/earshot/internal/prefs"
	"github.com/earshot-tools/earshot/internal/probe"
	"github.com/earshot-tools/earshot/internal/state"
	"github.com/earshot-tools/earshot/internal/ui"
)

// Options configure the earshot console.
type Options struct {
	ConfigPath string
	EnvFile    string // optional .env file; empty tries ./.env
	PrefsPath  string // empty uses default ~/.config/earshot/prefs.toml
}

// Run boots the earshot TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	loadEnvFile(opts.EnvFile)

	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		log.Printf("%s is not set; forensic analysis will be rejected by the engine", cfg.APIKeyEnv)
	}

	engine, err := forensic.NewClient(cfg.APIBase, cfg.Model, apiKey)
	if err != nil {
		return fmt.Errorf("init forensic client: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Engine:    engine,
		Prober:    probe.NewClient(),
		Panels:    &state.Panels{},
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// loadEnvFile loads the API key from a dotenv file when one exists. A
// missing file is fine; the key may already be in the environment.
func loadEnvFile(path string) {
	if path == "" {
		_ = godotenv.Load()
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("load env file %s: %v", path, err)
	}
}
