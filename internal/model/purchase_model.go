package model

import (
	"time"
)

// PurchaseModel 购买提交记录, 每次提交一条
type PurchaseModel struct {
	Id        int64     `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DialogId     string `json:"dialogId" gorm:"type:varchar(36);index;not null"`
	InvestmentId int64  `json:"investmentId" gorm:"not null"`
	UserId       int64  `json:"userId" gorm:"not null"`
	Sender       string `json:"sender" gorm:"type:varchar(42);not null"`

	Amount string `json:"amount" gorm:"type:varchar(78);not null"` // 展示单位
	Value  string `json:"value" gorm:"type:varchar(78);not null"`  // 最小单位

	TxHash  string         `json:"txHash" gorm:"type:varchar(66);index"`
	Status  PurchaseStatus `json:"status" gorm:"type:varchar(16);not null"`
	Reason  string         `json:"reason" gorm:"type:text"`
	Receipt ReceiptStatus  `json:"receipt" gorm:"type:varchar(16)"`
}

// PurchaseStatus 提交状态
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"   // 等待钱包签名
	PurchaseStatusSucceeded PurchaseStatus = "succeeded" // 交易已广播
	PurchaseStatusFailed    PurchaseStatus = "failed"    // 提交失败
)

// ReceiptStatus 链上回执状态
type ReceiptStatus string

const (
	ReceiptStatusUnknown   ReceiptStatus = ""
	ReceiptStatusConfirmed ReceiptStatus = "confirmed"
	ReceiptStatusReverted  ReceiptStatus = "reverted"
)

// TableName 自定义表名
func (PurchaseModel) TableName() string {
	return "purchases"
}
