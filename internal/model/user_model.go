package model

import (
	"slices"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserModel 平台用户
type UserModel struct {
	Id          int64                       `json:"id" gorm:"primaryKey"`
	Name        string                      `json:"name" gorm:"type:varchar(255);not null"`
	Wallet      datatypes.JSONSlice[string] `json:"wallet"`
	Email       string                      `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Request     datatypes.JSONSlice[int64]  `json:"request"`  // 申请中的投资ID
	Approved    datatypes.JSONSlice[int64]  `json:"approved"` // 已批准购买的投资ID
	DateCreated time.Time                   `json:"dateCreated" gorm:"autoCreateTime"`
}

// TableName 自定义表名
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate request/approved 默认为空数组
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Request == nil {
		u.Request = datatypes.JSONSlice[int64]{}
	}
	if u.Approved == nil {
		u.Approved = datatypes.JSONSlice[int64]{}
	}
	return nil
}

// IsApprovedFor 用户是否被批准购买指定投资
func (u *UserModel) IsApprovedFor(investmentId int64) bool {
	return slices.Contains(u.Approved, investmentId)
}
