package model

import (
	"time"
)

// InterestModel 未获批准用户的意向登记
type InterestModel struct {
	Id          int64     `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"type:varchar(255);not null"`
	EvmWallet   string    `json:"evmWallet" gorm:"type:varchar(42);not null"`
	InterestId  int64     `json:"interestId"` // 关联的投资ID
	DateCreated time.Time `json:"dateCreated" gorm:"autoCreateTime"`
}

// TableName 自定义表名
func (InterestModel) TableName() string {
	return "interests"
}
