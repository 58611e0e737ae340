package wallet

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/model"
)

// ExpectedSchemaVersion is the latest schema version the application expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS wallet_meta (
					key TEXT PRIMARY KEY,
					value TEXT NOT NULL
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					txid TEXT PRIMARY KEY,
					amount TEXT NOT NULL,
					direction TEXT NOT NULL,
					confirmations INTEGER NOT NULL DEFAULT 0,
					time DATETIME NOT NULL
				)`,
				`CREATE INDEX IF NOT EXISTS idx_transactions_time ON transactions(time)`,

				`CREATE TABLE IF NOT EXISTS utxos (
					txid TEXT NOT NULL,
					vout INTEGER NOT NULL,
					amount TEXT NOT NULL,
					PRIMARY KEY (txid, vout)
				)`,

				`CREATE TABLE IF NOT EXISTS fee_estimates (
					id INTEGER PRIMARY KEY CHECK (id = 1),
					slow INTEGER NOT NULL,
					medium INTEGER NOT NULL,
					fast INTEGER NOT NULL
				)`,
			}
			for _, q := range queries {
				if _, err := tx.Exec(q); err != nil {
					return fmt.Errorf("migration 1 failed: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Cached fiat prices",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS prices (
				currency TEXT PRIMARY KEY,
				price TEXT NOT NULL
			)`)
			if err != nil {
				return fmt.Errorf("migration 2 failed: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_versions: %w", err)
	}

	var current int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.Version <= current {
			continue
		}
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin migration %d: %w", m.Version, err)
		}
		if err := m.Up(tx); err != nil {
			_ = tx.Rollback()
			return err
		}
		if _, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, m.Version); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
		}
		slog.Info("applied migration", "version", m.Version, "description", m.Description)
	}

	return nil
}

// Seed populates an empty database with a realistic demo snapshot so the
// chat has something to talk about on first run.
func (s *Store) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing data: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().UTC()
	seedTxns := []struct {
		txid      string
		amount    string
		direction model.TransactionDirection
		confs     int
		age       time.Duration
	}{
		{"9f2c3a1d5e7b4860a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718", "0.025", model.DirectionIncoming, 312, 90 * 24 * time.Hour},
		{"1a2b3c4d5e6f708192a3b4c5d6e7f8091a2b3c4d5e6f708192a3b4c5d6e7f809", "0.01", model.DirectionOutgoing, 150, 30 * 24 * time.Hour},
		{"7e8d9c0b1a2f3e4d5c6b7a8091f2e3d4c5b6a7980e1d2c3b4a5f6e7d8c9b0a1f", "0.005", model.DirectionIncoming, 42, 7 * 24 * time.Hour},
		{"3c4d5e6f7a8b90c1d2e3f4a5b6c7d8e9f0a1b2c3d4e5f6a7b8c9d0e1f2a3b4c5", "0.0013", model.DirectionOutgoing, 6, 24 * time.Hour},
		{"5f6e7d8c9b0a1f2e3d4c5b6a7f8e9d0c1b2a3f4e5d6c7b8a9f0e1d2c3b4a5f6e", "0.002", model.DirectionIncoming, 1, 2 * time.Hour},
	}
	for _, st := range seedTxns {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO transactions (txid, amount, direction, confirmations, time)
			VALUES (?, ?, ?, ?, ?)`,
			st.txid, st.amount, string(st.direction), st.confs, now.Add(-st.age)); err != nil {
			return fmt.Errorf("failed to seed transaction: %w", err)
		}
	}

	balance := decimal.RequireFromString("0.0307")
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO wallet_meta (key, value) VALUES ('balance', ?)`, balance.String()); err != nil {
		return fmt.Errorf("failed to seed balance: %w", err)
	}

	seedUTXOs := []struct {
		txid   string
		vout   int
		amount string
	}{
		{"9f2c3a1d5e7b4860a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718", 0, "0.0237"},
		{"7e8d9c0b1a2f3e4d5c6b7a8091f2e3d4c5b6a7980e1d2c3b4a5f6e7d8c9b0a1f", 1, "0.005"},
		{"5f6e7d8c9b0a1f2e3d4c5b6a7f8e9d0c1b2a3f4e5d6c7b8a9f0e1d2c3b4a5f6e", 0, "0.002"},
	}
	for _, su := range seedUTXOs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO utxos (txid, vout, amount) VALUES (?, ?, ?)`,
			su.txid, su.vout, su.amount); err != nil {
			return fmt.Errorf("failed to seed utxo: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO fee_estimates (id, slow, medium, fast) VALUES (1, 2, 12, 30)`); err != nil {
		return fmt.Errorf("failed to seed fee estimates: %w", err)
	}

	seedPrices := map[string]string{
		"USD": "67250.00",
		"EUR": "61900.00",
		"GBP": "52800.00",
	}
	for currency, price := range seedPrices {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO prices (currency, price) VALUES (?, ?)`, currency, price); err != nil {
			return fmt.Errorf("failed to seed price: %w", err)
		}
	}

	return tx.Commit()
}
