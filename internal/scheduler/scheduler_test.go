package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fractionax/marketplace/internal/chain"
	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/database"
	"github.com/fractionax/marketplace/internal/logic"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReceipts map[common.Hash]chain.ReceiptResult

func (f fakeReceipts) Check(ctx context.Context, txHash common.Hash) (chain.ReceiptResult, error) {
	result, ok := f[txHash]
	if !ok {
		return chain.ReceiptResult{}, errors.New("rpc unavailable")
	}
	return result, nil
}

func TestPurchaseReceiptJob(t *testing.T) {
	ctx := context.Background()
	db, err := database.Init(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	purchases := logic.NewPurchaseLogic(db)

	hashes := []string{
		"0x1111111111111111111111111111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222222222222222222222222222",
		"0x3333333333333333333333333333333333333333333333333333333333333333",
		"0x4444444444444444444444444444444444444444444444444444444444444444",
	}
	ids := make([]int64, len(hashes))
	for i, hash := range hashes {
		record := model.PurchaseModel{DialogId: "d", InvestmentId: 1, UserId: 1, Sender: "0x0", Amount: "1", Value: "1"}
		require.NoError(t, purchases.RecordPending(ctx, &record))
		require.NoError(t, purchases.RecordResult(ctx, record.Id, model.PurchaseStatusSucceeded, hash, ""))
		ids[i] = record.Id
	}

	receipts := fakeReceipts{
		common.HexToHash(hashes[0]): {Ready: true, Success: true},
		common.HexToHash(hashes[1]): {Ready: true, Success: false},
		common.HexToHash(hashes[2]): {Ready: false},
	}
	job := NewPurchaseReceiptJob(purchases, receipts, time.Minute, 10)
	assert.Equal(t, "purchase_receipt_checker", job.GetName())

	job.Execute()

	remaining, err := purchases.ListUnconfirmed(ctx, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[2], remaining[0].Id)
	assert.Equal(t, ids[3], remaining[1].Id)

	var reverted model.PurchaseModel
	require.NoError(t, db.First(&reverted, ids[1]).Error)
	assert.Equal(t, model.ReceiptStatusReverted, reverted.Receipt)
}

type countingSweeper struct {
	cutoff time.Time
}

func (s *countingSweeper) Sweep(cutoff time.Time) int {
	s.cutoff = cutoff
	return 2
}

func TestDialogSweepJob(t *testing.T) {
	sweeper := &countingSweeper{}
	job := NewDialogSweepJob(sweeper, time.Hour)

	job.Execute()
	assert.WithinDuration(t, time.Now().Add(-time.Hour), sweeper.cutoff, time.Minute)
}

func TestDialogSweepJobClampsTTL(t *testing.T) {
	for _, ttl := range []time.Duration{0, time.Minute} {
		job := NewDialogSweepJob(&countingSweeper{}, ttl)
		assert.Equal(t, 2*minJobInterval, job.ttl)
	}
	assert.Equal(t, time.Hour, NewDialogSweepJob(&countingSweeper{}, time.Hour).ttl)

	m, err := NewManager(NewDialogSweepJob(&countingSweeper{}, 0))
	require.NoError(t, err)
	m.Start()
	defer m.Stop()
	assert.Len(t, m.scheduler.Jobs(), 1)
}

type recordingCleaner struct {
	cutoff time.Time
}

func (c *recordingCleaner) Cleanup(cutoff time.Time) int {
	c.cutoff = cutoff
	return 1
}

func TestLimiterCleanupJob(t *testing.T) {
	cleaner := &recordingCleaner{}
	job := NewLimiterCleanupJob(cleaner, 10*time.Minute)

	job.Execute()
	assert.WithinDuration(t, time.Now().Add(-10*time.Minute), cleaner.cutoff, time.Minute)

	assert.Equal(t, minJobInterval, NewLimiterCleanupJob(cleaner, 0).idle)
}

func TestManagerStartStop(t *testing.T) {
	m, err := NewManager(NewDialogSweepJob(&countingSweeper{}, time.Hour))
	require.NoError(t, err)
	m.Start()
	m.Stop()
}
