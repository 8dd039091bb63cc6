package purchase

import (
	"math/big"

	"github.com/fractionax/marketplace/internal/funding"
	"github.com/shopspring/decimal"
)

// Quote 一次购买的链上参数
type Quote struct {
	Amount    decimal.Decimal // 展示单位
	AmountWei *big.Int        // buy(amount) 参数
	ValueWei  *big.Int        // 交易附带金额 = amount * rate
}

// NewQuote 计算购买参数, amount 必须大于 0
func NewQuote(amount, rate decimal.Decimal, decimals int32) (Quote, error) {
	if !amount.IsPositive() {
		return Quote{}, ErrAmountNotPositive
	}
	amountWei, err := funding.ToSmallestUnit(amount, decimals)
	if err != nil {
		return Quote{}, err
	}
	// 附带金额可能超出精度, 截断到最小单位
	valueWei := amount.Mul(rate).Shift(decimals).Truncate(0).BigInt()
	return Quote{Amount: amount, AmountWei: amountWei, ValueWei: valueWei}, nil
}
