package scheduler

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fractionax/marketplace/internal/chain"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/go-co-op/gocron/v2"
)

// ReceiptChecker 交易回执检查, chain.ReceiptChecker 实现了该接口
type ReceiptChecker interface {
	Check(ctx context.Context, txHash common.Hash) (chain.ReceiptResult, error)
}

// PurchaseStore 购买记录
type PurchaseStore interface {
	ListUnconfirmed(ctx context.Context, limit int) ([]model.PurchaseModel, error)
	MarkReceipt(ctx context.Context, id int64, receipt model.ReceiptStatus) error
}

// PurchaseReceiptJob 为已广播的购买交易确认链上回执
type PurchaseReceiptJob struct {
	purchases PurchaseStore
	receipts  ReceiptChecker
	interval  time.Duration
	batchSize int
}

// NewPurchaseReceiptJob 创建回执确认任务
func NewPurchaseReceiptJob(purchases PurchaseStore, receipts ReceiptChecker, interval time.Duration, batchSize int) *PurchaseReceiptJob {
	if batchSize <= 0 {
		batchSize = 50
	}
	return &PurchaseReceiptJob{
		purchases: purchases,
		receipts:  receipts,
		interval:  interval,
		batchSize: batchSize,
	}
}

// GetName 获取任务名称
func (j *PurchaseReceiptJob) GetName() string {
	return "purchase_receipt_checker"
}

// GetSchedule 获取调度配置
func (j *PurchaseReceiptJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(j.interval)
}

// Execute 执行任务
func (j *PurchaseReceiptJob) Execute() {
	ctx, cancel := context.WithTimeout(context.Background(), j.interval)
	defer cancel()

	records, err := j.purchases.ListUnconfirmed(ctx, j.batchSize)
	if err != nil {
		logger.Error("Failed to fetch unconfirmed purchases: %v", err)
		return
	}
	if len(records) == 0 {
		return
	}

	updated := 0
	for _, record := range records {
		result, err := j.receipts.Check(ctx, common.HexToHash(record.TxHash))
		if err != nil {
			logger.Warn("Failed to check receipt of purchase %d (%s): %v", record.Id, record.TxHash, err)
			continue
		}
		if !result.Ready {
			continue
		}

		status := model.ReceiptStatusConfirmed
		if !result.Success {
			status = model.ReceiptStatusReverted
		}
		if err := j.purchases.MarkReceipt(ctx, record.Id, status); err != nil {
			logger.Error("Failed to mark purchase %d receipt: %v", record.Id, err)
			continue
		}
		logger.Info("Purchase %d tx %s %s", record.Id, record.TxHash, status)
		updated++
	}

	logger.Info("Purchase receipt check completed. Updated %d of %d purchases", updated, len(records))
}
