package handler

import (
	"github.com/fractionax/marketplace/internal/listing"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
	"gorm.io/datatypes"
)

// 五个存储端点的请求模型

// CreateInvestmentRequest 新增投资
type CreateInvestmentRequest struct {
	Title     string   `json:"title" binding:"required"`
	Category  string   `json:"category" binding:"required"`
	Location  string   `json:"location" binding:"required"`
	Country   string   `json:"country" binding:"required"`
	Structure string   `json:"structure" binding:"required"`
	Author    string   `json:"author" binding:"required"`
	Chain     string   `json:"chain" binding:"required"`
	Stage     string   `json:"stage" binding:"required"`
	Yields    string   `json:"yields" binding:"required"`
	Period    string   `json:"period" binding:"required"`
	Claim     string   `json:"claim" binding:"required"`
	Frequency string   `json:"frequency" binding:"required"`
	Contract  string   `json:"contract" binding:"required"`
	Keywords  []string `json:"keywords"`
	Content   string   `json:"content" binding:"required"`
	Images    []string `json:"images"`
	Minimum   string   `json:"minimum"`
	Maximum   string   `json:"maximum"`
}

// toModel 未提供的 keywords/images 保持 nil, 列中存 JSON null
func (r CreateInvestmentRequest) toModel() model.InvestmentModel {
	return model.InvestmentModel{
		Title:     r.Title,
		Category:  r.Category,
		Location:  r.Location,
		Country:   r.Country,
		Structure: r.Structure,
		Author:    r.Author,
		Chain:     r.Chain,
		Stage:     r.Stage,
		Yields:    r.Yields,
		Period:    r.Period,
		Claim:     r.Claim,
		Frequency: r.Frequency,
		Contract:  r.Contract,
		Keywords:  datatypes.JSONSlice[string](r.Keywords),
		Content:   r.Content,
		Images:    datatypes.JSONSlice[string](r.Images),
		Minimum:   r.Minimum,
		Maximum:   r.Maximum,
	}
}

// CreateUserRequest 新增用户
type CreateUserRequest struct {
	Name     string   `json:"name" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Wallet   []string `json:"wallet"`
	Request  []int64  `json:"request"`
	Approved []int64  `json:"approved"`
}

func (r CreateUserRequest) toModel() model.UserModel {
	u := model.UserModel{Name: r.Name, Email: r.Email}
	if r.Wallet != nil {
		u.Wallet = datatypes.JSONSlice[string](r.Wallet)
	}
	if r.Request != nil {
		u.Request = datatypes.JSONSlice[int64](r.Request)
	}
	if r.Approved != nil {
		u.Approved = datatypes.JSONSlice[int64](r.Approved)
	}
	return u
}

// CreateInterestRequest 意向登记
type CreateInterestRequest struct {
	Email      string `json:"email" binding:"required"`
	EvmWallet  string `json:"evmWallet" binding:"required"`
	InterestId int64  `json:"interestId"`
}

func (r CreateInterestRequest) toModel() model.InterestModel {
	return model.InterestModel{Email: r.Email, EvmWallet: r.EvmWallet, InterestId: r.InterestId}
}

// CreateNewsletterRequest 订阅
type CreateNewsletterRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

func (r CreateNewsletterRequest) toModel() model.NewsletterModel {
	return model.NewsletterModel{Name: r.Name, Email: r.Email}
}

// CreateWaitlistRequest 候补名单
type CreateWaitlistRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r CreateWaitlistRequest) toModel() model.WaitlistModel {
	return model.WaitlistModel{Email: r.Email}
}

// 购买对话框

// OpenPurchaseRequest 打开购买对话框
type OpenPurchaseRequest struct {
	UserId       int64 `json:"userId" binding:"required"`
	InvestmentId int64 `json:"investmentId" binding:"required"`
}

// SubmitPurchaseRequest 提交购买金额 (展示单位)
type SubmitPurchaseRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// PurchaseResponse 对话框状态
type PurchaseResponse struct {
	DialogId     string                `json:"dialogId"`
	UserId       int64                 `json:"userId"`
	InvestmentId int64                 `json:"investmentId"`
	State        purchase.State        `json:"state"`
	Dialog       listing.DialogCopy    `json:"dialog"`
	Submissions  []model.PurchaseModel `json:"submissions,omitempty"`
}

func newPurchaseResponse(d *purchase.Dialog) PurchaseResponse {
	state := d.State()
	return PurchaseResponse{
		DialogId:     d.ID(),
		UserId:       d.UserID(),
		InvestmentId: d.InvestmentID(),
		State:        state,
		Dialog:       listing.CopyFor(true, state),
	}
}
