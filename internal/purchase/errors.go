package purchase

import "errors"

var (
	// ErrAmountNotPositive 金额必须大于 0
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	// ErrSubmissionPending 已有提交在等待签名
	ErrSubmissionPending = errors.New("a submission is already pending")
	// ErrWalletNotConnected 未连接钱包
	ErrWalletNotConnected = errors.New("wallet not connected")
	// ErrNotApproved 用户未获批购买该投资, 需要先登记意向
	ErrNotApproved = errors.New("user is not approved for this investment")
	// ErrDialogNotFound 对话框不存在
	ErrDialogNotFound = errors.New("purchase dialog not found")
)
