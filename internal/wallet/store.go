// Package wallet is the sqlite-backed snapshot store for the demo wallet.
// The CLI host loads a snapshot into the conversation context before each
// turn; the language engine itself never touches this package.
package wallet

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/purser-dev/purser/internal/common"
	"github.com/purser-dev/purser/internal/model"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store persists the wallet snapshot: balance, recent transactions,
// unspent outputs, fee estimates and cached prices.
type Store struct {
	db     *sql.DB
	dbPath string
}

// NewStore opens (or creates) the wallet database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("dbPath cannot be empty")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{db: db, dbPath: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Snapshot loads the full wallet view for one conversation turn.
func (s *Store) Snapshot(ctx context.Context) (model.ConversationContext, error) {
	var snap model.ConversationContext

	balance, err := s.loadBalance(ctx)
	if err != nil {
		return snap, err
	}
	snap.Balance = balance

	snap.RecentTxns, err = s.loadTransactions(ctx, 20)
	if err != nil {
		return snap, err
	}

	snap.UTXOs, err = s.loadUTXOs(ctx)
	if err != nil {
		return snap, err
	}

	snap.FeeEstimates, err = s.loadFees(ctx)
	if err != nil {
		return snap, err
	}

	snap.Prices, err = s.loadPrices(ctx)
	if err != nil {
		return snap, err
	}

	return snap, nil
}

func (s *Store) loadBalance(ctx context.Context) (decimal.Decimal, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM wallet_meta WHERE key = 'balance'`).Scan(&raw)
	if err == sql.ErrNoRows {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load balance: %w", err)
	}
	bal, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("corrupt balance value %q: %w", raw, common.ErrDatabaseCorrupted)
	}
	return bal, nil
}

func (s *Store) loadTransactions(ctx context.Context, limit int) ([]model.TransactionSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT txid, amount, direction, confirmations, time
		FROM transactions
		ORDER BY time DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var txns []model.TransactionSummary
	for rows.Next() {
		var tx model.TransactionSummary
		var amount, direction string
		var ts time.Time
		if err := rows.Scan(&tx.TxID, &amount, &direction, &tx.Confirmations, &ts); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		tx.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount for %s: %w", tx.TxID, common.ErrDatabaseCorrupted)
		}
		tx.Direction = model.TransactionDirection(direction)
		tx.Time = ts
		txns = append(txns, tx)
	}
	return txns, rows.Err()
}

func (s *Store) loadUTXOs(ctx context.Context) ([]model.UTXO, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT txid, vout, amount FROM utxos ORDER BY txid, vout`)
	if err != nil {
		return nil, fmt.Errorf("failed to query utxos: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var utxos []model.UTXO
	for rows.Next() {
		var u model.UTXO
		var amount string
		if err := rows.Scan(&u.TxID, &u.Vout, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan utxo: %w", err)
		}
		u.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt utxo amount for %s:%d: %w", u.TxID, u.Vout, common.ErrDatabaseCorrupted)
		}
		utxos = append(utxos, u)
	}
	return utxos, rows.Err()
}

func (s *Store) loadFees(ctx context.Context) (*model.FeeEstimates, error) {
	var fees model.FeeEstimates
	err := s.db.QueryRowContext(ctx,
		`SELECT slow, medium, fast FROM fee_estimates WHERE id = 1`).
		Scan(&fees.Slow, &fees.Medium, &fees.Fast)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load fee estimates: %w", err)
	}
	return &fees, nil
}

func (s *Store) loadPrices(ctx context.Context) (map[string]decimal.Decimal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT currency, price FROM prices`)
	if err != nil {
		return nil, fmt.Errorf("failed to query prices: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	prices := make(map[string]decimal.Decimal)
	for rows.Next() {
		var currency, raw string
		if err := rows.Scan(&currency, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("corrupt price for %s: %w", currency, common.ErrDatabaseCorrupted)
		}
		prices[currency] = price
	}
	return prices, rows.Err()
}

// RecordSend appends an outgoing transaction and debits the balance.
func (s *Store) RecordSend(ctx context.Context, txid string, amount, fee decimal.Decimal) error {
	if txid == "" {
		return fmt.Errorf("txid cannot be empty")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO transactions (txid, amount, direction, confirmations, time)
		VALUES (?, ?, ?, 0, ?)`,
		txid, amount.String(), string(model.DirectionOutgoing), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	var raw string
	balance := decimal.Zero
	err = tx.QueryRowContext(ctx, `SELECT value FROM wallet_meta WHERE key = 'balance'`).Scan(&raw)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to load balance: %w", err)
	}
	if err == nil {
		if balance, err = decimal.NewFromString(raw); err != nil {
			return fmt.Errorf("corrupt balance value %q: %w", raw, common.ErrDatabaseCorrupted)
		}
	}
	next := balance.Sub(amount).Sub(fee)
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO wallet_meta (key, value) VALUES ('balance', ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		next.String()); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}

	return tx.Commit()
}
