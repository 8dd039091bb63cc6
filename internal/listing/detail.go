// Package listing 组装投资详情页: 内容, 额度, 资金池进度, 以及按审批状态切换的购买/登记对话框.
package listing

import (
	"fmt"
	"strings"

	"github.com/fractionax/marketplace/internal/funding"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/purchase"
)

// Action 对话框动作
type Action string

const (
	ActionInvest           Action = "invest"
	ActionRegisterInterest Action = "register-interest"
)

// DialogCopy 对话框文案
type DialogCopy struct {
	Action      Action `json:"action"`
	Trigger     string `json:"trigger"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CopyFor 获批用户看到购买对话框, 其余用户看到意向登记对话框
func CopyFor(approved bool, state purchase.State) DialogCopy {
	if !approved {
		return DialogCopy{
			Action:      ActionRegisterInterest,
			Trigger:     "Register Interest",
			Title:       "Thank you for your interest",
			Description: "Please leave your EVM wallet address for us to whitelist you and your email address so that we can notify you.",
		}
	}
	if state.Status == purchase.StatusSucceeded {
		return DialogCopy{
			Action:      ActionInvest,
			Trigger:     "Invest",
			Title:       "Transaction successful!",
			Description: "You can close this window now.",
		}
	}
	return DialogCopy{
		Action:      ActionInvest,
		Trigger:     "Invest",
		Title:       "How much you want to invest?",
		Description: "Please enter the amount you want to invest and ensure that you have sufficient fund to pay.",
	}
}

// Detail 投资详情
type Detail struct {
	Id        int64    `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Place     string   `json:"place"`
	Structure string   `json:"structure"`
	Author    string   `json:"author"`
	Chain     string   `json:"chain"`
	Contract  string   `json:"contract"`
	Stage     string   `json:"stage"`
	Yields    string   `json:"yields"`
	Period    string   `json:"period"`
	Claim     string   `json:"claim"`
	Frequency string   `json:"frequency"`
	Keywords  string   `json:"keywords"`
	Content   string   `json:"content"`
	Cover     string   `json:"cover"`
	Gallery   []string `json:"gallery"`

	Bounds   BoundsView      `json:"bounds"`
	Pool     *funding.View   `json:"pool,omitempty"`
	Approved bool            `json:"approved"`
	Dialog   DialogCopy      `json:"dialog"`
	Purchase *purchase.State `json:"purchase,omitempty"`
}

// Input 组装详情所需的数据
type Input struct {
	Investment *model.InvestmentModel
	Approved   bool
	Purchase   *purchase.State // 可选, 当前对话框状态
	Pool       *funding.View   // 可选, 资金池读取结果
	Decimals   int32
}

// Build 组装详情
func Build(in Input) (Detail, error) {
	inv := in.Investment
	if inv == nil {
		return Detail{}, fmt.Errorf("build listing: missing investment")
	}

	bounds, err := ParseBounds(inv.Minimum, inv.Maximum, in.Decimals)
	if err != nil {
		return Detail{}, fmt.Errorf("investment %d bounds: %w", inv.Id, err)
	}

	state := purchase.Idle()
	if in.Purchase != nil {
		state = *in.Purchase
	}

	gallery := []string{}
	if len(inv.Images) > 1 {
		gallery = append(gallery, inv.Images[1:]...)
	}

	return Detail{
		Id:        inv.Id,
		Title:     inv.Title,
		Category:  inv.Category,
		Place:     Place(inv.Location, inv.Country),
		Structure: inv.Structure,
		Author:    inv.Author,
		Chain:     inv.Chain,
		Contract:  inv.Contract,
		Stage:     inv.Stage,
		Yields:    inv.Yields,
		Period:    inv.Period,
		Claim:     inv.Claim,
		Frequency: inv.Frequency,
		Keywords:  strings.Join(inv.Keywords, " | "),
		Content:   inv.DisplayContent(),
		Cover:     inv.CoverImage(),
		Gallery:   gallery,
		Bounds:    bounds.view(in.Decimals),
		Pool:      in.Pool,
		Approved:  in.Approved,
		Dialog:    CopyFor(in.Approved, state),
		Purchase:  in.Purchase,
	}, nil
}

// Place "location, country", 没有 location 时只有 country
func Place(location, country string) string {
	if location == "" {
		return country
	}
	return location + ", " + country
}
