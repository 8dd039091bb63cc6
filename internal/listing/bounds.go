package listing

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/fractionax/marketplace/internal/funding"
)

// ErrOutOfBounds 金额不在投资额度范围内
var ErrOutOfBounds = errors.New("amount outside investment bounds")

// Bounds 投资额度, 未设置的一端为 nil
type Bounds struct {
	Minimum *big.Int
	Maximum *big.Int
}

// ParseBounds 把十进制额度换算成最小单位
func ParseBounds(minimum, maximum string, decimals int32) (Bounds, error) {
	var (
		b   Bounds
		err error
	)
	if minimum != "" {
		if b.Minimum, err = funding.ParseUnits(minimum, decimals); err != nil {
			return Bounds{}, fmt.Errorf("minimum: %w", err)
		}
	}
	if maximum != "" {
		if b.Maximum, err = funding.ParseUnits(maximum, decimals); err != nil {
			return Bounds{}, fmt.Errorf("maximum: %w", err)
		}
	}
	return b, nil
}

// Check 金额 (最小单位) 是否在范围内, 端点包含在内
func (b Bounds) Check(amount *big.Int) error {
	if b.Minimum != nil && amount.Cmp(b.Minimum) < 0 {
		return fmt.Errorf("%s below minimum %s: %w", amount, b.Minimum, ErrOutOfBounds)
	}
	if b.Maximum != nil && amount.Cmp(b.Maximum) > 0 {
		return fmt.Errorf("%s above maximum %s: %w", amount, b.Maximum, ErrOutOfBounds)
	}
	return nil
}

// BoundsView 额度展示
type BoundsView struct {
	Minimum    string `json:"minimum,omitempty"`
	Maximum    string `json:"maximum,omitempty"`
	MinimumWei string `json:"minimumWei,omitempty"`
	MaximumWei string `json:"maximumWei,omitempty"`
}

func (b Bounds) view(decimals int32) BoundsView {
	var v BoundsView
	if b.Minimum != nil {
		v.Minimum = funding.FormatUnits(b.Minimum, decimals)
		v.MinimumWei = b.Minimum.String()
	}
	if b.Maximum != nil {
		v.Maximum = funding.FormatUnits(b.Maximum, decimals)
		v.MaximumWei = b.Maximum.String()
	}
	return v
}
