package model

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// InvestmentModel 投资标的 (一行对应一个上架资产)
type InvestmentModel struct {
	Id int64 `json:"id" gorm:"primaryKey"`

	// 基本信息
	Title     string `json:"title" gorm:"type:text;not null"`
	Category  string `json:"category" gorm:"type:text;not null"`
	Location  string `json:"location" gorm:"type:text;not null"`
	Country   string `json:"country" gorm:"type:text;not null"`
	Structure string `json:"structure" gorm:"type:text;not null"`
	Author    string `json:"author" gorm:"type:varchar(255);not null"`

	// 链上信息
	Chain    string `json:"chain" gorm:"type:text;not null"`
	Contract string `json:"contract" gorm:"type:varchar(255);not null"`

	// 收益信息
	Stage     string `json:"stage" gorm:"type:text;not null"`
	Yields    string `json:"yields" gorm:"type:text;not null"`
	Period    string `json:"period" gorm:"type:text;not null"`
	Claim     string `json:"claim" gorm:"type:text;not null"`
	Frequency string `json:"frequency" gorm:"type:text;not null"`

	// 展示内容
	Keywords datatypes.JSONSlice[string] `json:"keywords"`
	Content  string                      `json:"content" gorm:"type:text;not null"`
	Images   datatypes.JSONSlice[string] `json:"images"`

	// 投资额度, 十进制字符串, 展示前换算为最小单位
	Minimum string `json:"minimum" gorm:"type:varchar(78)"`
	Maximum string `json:"maximum" gorm:"type:varchar(78)"`

	DateCreated  time.Time  `json:"dateCreated" gorm:"autoCreateTime"`
	DateApproved *time.Time `json:"dateApproved"`
	DateEdited   *time.Time `json:"dateEdited"`
}

// TableName 自定义表名
func (InvestmentModel) TableName() string {
	return "investments"
}

// DisplayContent 还原内容中的字面量 "\n"
func (i *InvestmentModel) DisplayContent() string {
	return strings.ReplaceAll(i.Content, `\n`, "\n")
}

// CoverImage 首图, 没有图片时返回空字符串
func (i *InvestmentModel) CoverImage() string {
	if len(i.Images) == 0 {
		return ""
	}
	return i.Images[0]
}
