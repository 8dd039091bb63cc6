package purchase

// Status 购买对话框状态
type Status string

const (
	StatusIdle      Status = "idle"
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// State 对话框的唯一状态来源
type State struct {
	Status Status `json:"status"`
	TxHash string `json:"txHash,omitempty"` // 仅 Succeeded
	Reason string `json:"-"`                // 仅 Failed, 不对外展示
}

// Idle 初始状态
func Idle() State {
	return State{Status: StatusIdle}
}

// Pending 等待钱包签名
func Pending() State {
	return State{Status: StatusPending}
}

// Succeeded 交易已广播
func Succeeded(txHash string) State {
	return State{Status: StatusSucceeded, TxHash: txHash}
}

// Failed 提交失败
func Failed(reason string) State {
	return State{Status: StatusFailed, Reason: reason}
}
