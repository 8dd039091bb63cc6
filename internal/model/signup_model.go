package model

import (
	"time"
)

// WaitlistModel 候补名单
type WaitlistModel struct {
	Id          int64     `json:"id" gorm:"primaryKey"`
	Email       string    `json:"email" gorm:"type:varchar(255);not null"`
	DateCreated time.Time `json:"dateCreated" gorm:"autoCreateTime"`
	DateUpdated time.Time `json:"dateUpdated" gorm:"autoUpdateTime"`
}

// TableName 自定义表名
func (WaitlistModel) TableName() string {
	return "waitlist"
}

// NewsletterModel 订阅用户
type NewsletterModel struct {
	Id          int64     `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Email       string    `json:"email" gorm:"type:varchar(255);not null"`
	DateCreated time.Time `json:"dateCreated" gorm:"autoCreateTime"`
	DateUpdated time.Time `json:"dateUpdated" gorm:"autoUpdateTime"`
}

// TableName 自定义表名
func (NewsletterModel) TableName() string {
	return "newsletter"
}
