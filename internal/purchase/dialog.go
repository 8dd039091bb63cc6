package purchase

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Dialog 一个购买对话框, 同一时间最多一个在途提交
type Dialog struct {
	mu           sync.Mutex
	id           string
	investmentId int64
	userId       int64
	state        State
	done         chan struct{}
	openedAt     time.Time
}

func newDialog(id string, investmentId, userId int64) *Dialog {
	done := make(chan struct{})
	close(done)
	return &Dialog{
		id:           id,
		investmentId: investmentId,
		userId:       userId,
		state:        Idle(),
		done:         done,
		openedAt:     time.Now(),
	}
}

// ID 对话框 ID
func (d *Dialog) ID() string {
	return d.id
}

// InvestmentID 投资 ID
func (d *Dialog) InvestmentID() int64 {
	return d.investmentId
}

// UserID 用户 ID
func (d *Dialog) UserID() int64 {
	return d.userId
}

// OpenedAt 打开时间
func (d *Dialog) OpenedAt() time.Time {
	return d.openedAt
}

// State 当前状态
func (d *Dialog) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// CanSubmit 金额大于 0 且没有在途提交
func (d *Dialog) CanSubmit(amount decimal.Decimal) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return amount.IsPositive() && d.state.Status != StatusPending
}

// Done 当前提交结束时关闭
func (d *Dialog) Done() <-chan struct{} {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.done
}

func (d *Dialog) begin(amount decimal.Decimal) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !amount.IsPositive() {
		return ErrAmountNotPositive
	}
	if d.state.Status == StatusPending {
		return ErrSubmissionPending
	}
	d.state = Pending()
	d.done = make(chan struct{})
	return nil
}

func (d *Dialog) finish(state State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state.Status != StatusPending {
		return
	}
	d.state = state
	close(d.done)
}
