package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/purser-dev/purser/internal/engine"
	"github.com/purser-dev/purser/internal/knowledge"
	"github.com/purser-dev/purser/internal/wallet"
)

// initWallet opens the snapshot store, runs migrations, and seeds demo
// data on first run.
func initWallet(ctx context.Context) (*wallet.Store, error) {
	dbPath := viper.GetString("wallet.db")
	if dbPath == "" {
		dbPath = "~/.local/share/purser/wallet.db"
	}
	dbPath = expandHome(dbPath)

	store, err := wallet.NewStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err := store.Seed(ctx); err != nil {
		return nil, fmt.Errorf("failed to seed wallet: %w", err)
	}

	return store, nil
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) string {
	switch {
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// initEngine builds the conversation engine in the configured language.
func initEngine() *engine.Engine {
	lang := knowledge.Language(viper.GetString("chat.language"))
	if lang == "" {
		lang = knowledge.LangEnglish
	}
	return engine.New(lang)
}
