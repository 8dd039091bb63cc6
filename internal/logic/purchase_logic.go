package logic

import (
	"context"
	"fmt"

	"github.com/fractionax/marketplace/internal/model"
	"gorm.io/gorm"
)

// PurchaseLogic 购买提交记录
type PurchaseLogic struct {
	db *gorm.DB
}

// NewPurchaseLogic 创建购买记录逻辑
func NewPurchaseLogic(db *gorm.DB) *PurchaseLogic {
	return &PurchaseLogic{db: db}
}

// RecordPending 记录一次进入等待签名状态的提交
func (p *PurchaseLogic) RecordPending(ctx context.Context, record *model.PurchaseModel) error {
	record.Status = model.PurchaseStatusPending
	if err := p.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("record pending purchase: %w", err)
	}
	return nil
}

// RecordResult 记录提交结果
func (p *PurchaseLogic) RecordResult(ctx context.Context, id int64, status model.PurchaseStatus, txHash, reason string) error {
	err := p.db.WithContext(ctx).Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  status,
			"tx_hash": txHash,
			"reason":  reason,
		}).Error
	if err != nil {
		return fmt.Errorf("record purchase %d result: %w", id, err)
	}
	return nil
}

// ListUnconfirmed 已广播但尚未确认回执的提交
func (p *PurchaseLogic) ListUnconfirmed(ctx context.Context, limit int) ([]model.PurchaseModel, error) {
	var records []model.PurchaseModel
	err := p.db.WithContext(ctx).
		Where("status = ? AND receipt = ?", model.PurchaseStatusSucceeded, model.ReceiptStatusUnknown).
		Order("id").
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list unconfirmed purchases: %w", err)
	}
	return records, nil
}

// MarkReceipt 更新回执状态
func (p *PurchaseLogic) MarkReceipt(ctx context.Context, id int64, receipt model.ReceiptStatus) error {
	err := p.db.WithContext(ctx).Model(&model.PurchaseModel{}).
		Where("id = ?", id).
		Update("receipt", receipt).Error
	if err != nil {
		return fmt.Errorf("mark purchase %d receipt: %w", id, err)
	}
	return nil
}

// ListByDialog 获取对话框的全部提交
func (p *PurchaseLogic) ListByDialog(ctx context.Context, dialogId string) ([]model.PurchaseModel, error) {
	records := make([]model.PurchaseModel, 0)
	err := p.db.WithContext(ctx).Where("dialog_id = ?", dialogId).Order("id").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list purchases of dialog %s: %w", dialogId, err)
	}
	return records, nil
}
