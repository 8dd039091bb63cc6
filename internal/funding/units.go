package funding

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrTooPrecise 金额小数位超过代币精度
var ErrTooPrecise = errors.New("amount has more decimal places than the token supports")

// ToSmallestUnit 展示单位转最小单位
func ToSmallestUnit(amount decimal.Decimal, decimals int32) (*big.Int, error) {
	shifted := amount.Shift(decimals)
	if !shifted.Equal(shifted.Truncate(0)) {
		return nil, fmt.Errorf("%s: %w", amount.String(), ErrTooPrecise)
	}
	return shifted.BigInt(), nil
}

// ParseUnits 解析十进制字符串为最小单位
func ParseUnits(s string, decimals int32) (*big.Int, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return ToSmallestUnit(amount, decimals)
}

// FormatUnits 最小单位转展示单位, 去掉末尾的 0
func FormatUnits(v *big.Int, decimals int32) string {
	if v == nil {
		return "0"
	}
	return decimal.NewFromBigInt(v, -decimals).String()
}
