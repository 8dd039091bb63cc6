// Package purchase 管理购买对话框: 审批检查, 金额校验, 异步提交 buy 交易并记录结果.
package purchase

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/metrics"
	"github.com/fractionax/marketplace/internal/model"
	"github.com/fractionax/marketplace/internal/wallet"
	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
)

// Buyer 资金池写调用, chain.Pool 实现了该接口
type Buyer interface {
	Buy(opts *bind.TransactOpts, amount, value *big.Int) (*types.Transaction, error)
}

// Approvals 用户审批查询
type Approvals interface {
	IsApproved(ctx context.Context, userId, investmentId int64) (bool, error)
}

// Recorder 提交记录
type Recorder interface {
	RecordPending(ctx context.Context, record *model.PurchaseModel) error
	RecordResult(ctx context.Context, id int64, status model.PurchaseStatus, txHash, reason string) error
}

// Options 购买参数
type Options struct {
	Decimals  int32
	ValueRate decimal.Decimal
}

// Service 购买服务
type Service struct {
	buyer     Buyer
	conn      wallet.Connection
	approvals Approvals
	recorder  Recorder
	workers   *ants.Pool
	opts      Options

	mu      sync.RWMutex
	dialogs map[string]*Dialog
}

// NewService 创建购买服务
func NewService(buyer Buyer, conn wallet.Connection, approvals Approvals, recorder Recorder, workers *ants.Pool, opts Options) *Service {
	return &Service{
		buyer:     buyer,
		conn:      conn,
		approvals: approvals,
		recorder:  recorder,
		workers:   workers,
		opts:      opts,
		dialogs:   make(map[string]*Dialog),
	}
}

// Open 为已获批的用户打开购买对话框
func (s *Service) Open(ctx context.Context, userId, investmentId int64) (*Dialog, error) {
	approved, err := s.approvals.IsApproved(ctx, userId, investmentId)
	if err != nil {
		return nil, fmt.Errorf("check approval: %w", err)
	}
	if !approved {
		return nil, ErrNotApproved
	}

	d := newDialog(uuid.NewString(), investmentId, userId)
	s.mu.Lock()
	s.dialogs[d.ID()] = d
	s.mu.Unlock()

	logger.Info("Purchase dialog %s opened: user=%d investment=%d", d.ID(), userId, investmentId)
	return d, nil
}

// Dialog 获取对话框
func (s *Service) Dialog(id string) (*Dialog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.dialogs[id]
	if !ok {
		return nil, ErrDialogNotFound
	}
	return d, nil
}

// Close 关闭对话框, 在途提交仍会完成并记录
func (s *Service) Close(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dialogs[id]; !ok {
		return ErrDialogNotFound
	}
	delete(s.dialogs, id)
	return nil
}

// Sweep 关闭打开时间早于 cutoff 且没有在途提交的对话框, 返回关闭数量
func (s *Service) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	closed := 0
	for id, d := range s.dialogs {
		if d.OpenedAt().Before(cutoff) && d.State().Status != StatusPending {
			delete(s.dialogs, id)
			closed++
		}
	}
	return closed
}

// Submit 提交购买, 返回 Pending 状态; 结果由 Dialog.State 反映
func (s *Service) Submit(ctx context.Context, dialogId string, amount decimal.Decimal) (State, error) {
	d, err := s.Dialog(dialogId)
	if err != nil {
		return State{}, err
	}
	if !d.CanSubmit(amount) {
		if !amount.IsPositive() {
			return d.State(), ErrAmountNotPositive
		}
		return d.State(), ErrSubmissionPending
	}

	sender := wallet.SenderAddress(s.conn)
	if sender == wallet.ZeroAddress {
		return d.State(), ErrWalletNotConnected
	}

	quote, err := NewQuote(amount, s.opts.ValueRate, s.opts.Decimals)
	if err != nil {
		return d.State(), err
	}

	if err := d.begin(amount); err != nil {
		return d.State(), err
	}

	// 请求结束后交易仍需完成
	taskCtx := context.WithoutCancel(ctx)
	record := &model.PurchaseModel{
		DialogId:     d.ID(),
		InvestmentId: d.InvestmentID(),
		UserId:       d.UserID(),
		Sender:       sender.Hex(),
		Amount:       quote.Amount.String(),
		Value:        quote.ValueWei.String(),
	}
	if err := s.recorder.RecordPending(taskCtx, record); err != nil {
		logger.Error("Failed to record purchase for dialog %s: %v", d.ID(), err)
	}

	if err := s.workers.Submit(func() {
		s.dispatch(taskCtx, d, record, quote)
	}); err != nil {
		s.complete(taskCtx, d, record, "", fmt.Errorf("dispatch purchase: %w", err))
	}

	return Pending(), nil
}

func (s *Service) dispatch(ctx context.Context, d *Dialog, record *model.PurchaseModel, quote Quote) {
	opts, err := s.conn.Transactor(ctx)
	if err != nil {
		if errors.Is(err, wallet.ErrNotConnected) {
			err = ErrWalletNotConnected
		}
		s.complete(ctx, d, record, "", err)
		return
	}

	tx, err := s.buyer.Buy(opts, quote.AmountWei, quote.ValueWei)
	if err != nil {
		s.complete(ctx, d, record, "", err)
		return
	}
	s.complete(ctx, d, record, tx.Hash().Hex(), nil)
}

func (s *Service) complete(ctx context.Context, d *Dialog, record *model.PurchaseModel, txHash string, err error) {
	state := Succeeded(txHash)
	status := model.PurchaseStatusSucceeded
	if err != nil {
		state = Failed(err.Error())
		status = model.PurchaseStatusFailed
		logger.Warn("Purchase dialog %s failed: %v", d.ID(), err)
	} else {
		logger.Info("Purchase dialog %s submitted tx %s", d.ID(), txHash)
	}

	if record.Id != 0 {
		if recErr := s.recorder.RecordResult(ctx, record.Id, status, txHash, state.Reason); recErr != nil {
			logger.Error("Failed to record purchase %d result: %v", record.Id, recErr)
		}
	}
	metrics.RecordPurchase(string(state.Status))
	d.finish(state)
}
