package funding

import (
	"fmt"
	"math/big"
)

var hundred = big.NewInt(100)

// Fraction 已募集比例, 整数截断除法; cap 为 0 时按分母 1 处理
func Fraction(bought, cap *big.Int) *big.Int {
	b := orZero(bought)
	c := orZero(cap)
	if c.Sign() == 0 {
		return new(big.Int).Set(b)
	}
	return new(big.Int).Quo(b, c)
}

// ProgressOffset 进度条向左平移量
func ProgressOffset(fraction *big.Int) *big.Int {
	return new(big.Int).Sub(hundred, orZero(fraction))
}

// Summary 募集进度文案
func Summary(bought, cap *big.Int, decimals int32) string {
	return fmt.Sprintf("Raised %s of %s (%s%% funded)",
		FormatUnits(orZero(bought), decimals),
		FormatUnits(orZero(cap), decimals),
		Fraction(bought, cap).String())
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
