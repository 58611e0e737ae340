package wallet

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/purser-dev/purser/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))
	require.NoError(t, s.Seed(ctx))
	return s
}

func TestStore_RequiresPath(t *testing.T) {
	_, err := NewStore("")
	require.Error(t, err)
}

func TestStore_MigrateIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate(context.Background()))
	require.NoError(t, s.Migrate(context.Background()))
}

func TestStore_SeedIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	before, err := s.Snapshot(ctx)
	require.NoError(t, err)

	require.NoError(t, s.Seed(ctx))
	after, err := s.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, len(before.RecentTxns), len(after.RecentTxns))
	assert.True(t, before.Balance.Equal(after.Balance))
}

func TestStore_Snapshot(t *testing.T) {
	s := newTestStore(t)
	snap, err := s.Snapshot(context.Background())
	require.NoError(t, err)

	assert.True(t, snap.Balance.Equal(decimal.RequireFromString("0.0307")))
	require.Len(t, snap.RecentTxns, 5)
	// Newest first.
	assert.Equal(t, 1, snap.RecentTxns[0].Confirmations)
	assert.Equal(t, model.DirectionIncoming, snap.RecentTxns[0].Direction)

	assert.Len(t, snap.UTXOs, 3)

	require.NotNil(t, snap.FeeEstimates)
	assert.Equal(t, int64(2), snap.FeeEstimates.Slow)
	assert.Equal(t, int64(12), snap.FeeEstimates.Medium)
	assert.Equal(t, int64(30), snap.FeeEstimates.Fast)

	usd, ok := snap.Prices["USD"]
	require.True(t, ok)
	assert.True(t, usd.Equal(decimal.RequireFromString("67250.00")))
	assert.Contains(t, snap.Prices, "EUR")
	assert.Contains(t, snap.Prices, "GBP")
}

func TestStore_RecordSend(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	amount := decimal.RequireFromString("0.01")
	fee := decimal.RequireFromString("0.0000035")
	txid := "c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00"

	require.NoError(t, s.RecordSend(ctx, txid, amount, fee))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)

	want := decimal.RequireFromString("0.0307").Sub(amount).Sub(fee)
	assert.True(t, snap.Balance.Equal(want), "got balance %s", snap.Balance)

	require.Len(t, snap.RecentTxns, 6)
	newest := snap.RecentTxns[0]
	assert.Equal(t, txid, newest.TxID)
	assert.Equal(t, model.DirectionOutgoing, newest.Direction)
	assert.Equal(t, 0, newest.Confirmations)
	assert.True(t, newest.Amount.Equal(amount))
}

func TestStore_RecordSendValidation(t *testing.T) {
	s := newTestStore(t)
	err := s.RecordSend(context.Background(), "", decimal.NewFromInt(1), decimal.Zero)
	require.Error(t, err)
}

func TestStore_EmptyDatabaseSnapshot(t *testing.T) {
	s, err := NewStore(filepath.Join(t.TempDir(), "wallet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()
	require.NoError(t, s.Migrate(ctx))

	snap, err := s.Snapshot(ctx)
	require.NoError(t, err)
	assert.True(t, snap.Balance.IsZero())
	assert.Empty(t, snap.RecentTxns)
	assert.Empty(t, snap.UTXOs)
	assert.Nil(t, snap.FeeEstimates)
	assert.Empty(t, snap.Prices)
}
