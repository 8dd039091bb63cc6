package funding

import (
	"fmt"
)

// View 资金池展示数据
type View struct {
	Cap            string `json:"cap"`
	Bought         string `json:"bought"`
	Investors      string `json:"investors"`
	Token          string `json:"token"`
	TokenShort     string `json:"tokenShort"`
	CapDisplay     string `json:"capDisplay"`
	BoughtDisplay  string `json:"boughtDisplay"`
	Symbol         string `json:"symbol"`
	FundedFraction string `json:"fundedFraction"`
	ProgressOffset string `json:"progressOffset"`
	Summary        string `json:"summary"`
}

// NewView 由快照计算展示数据
func NewView(snap Snapshot, decimals int32, symbol string) View {
	fraction := Fraction(snap.Bought, snap.Cap)
	token := snap.Token.Hex()
	return View{
		Cap:            orZero(snap.Cap).String(),
		Bought:         orZero(snap.Bought).String(),
		Investors:      orZero(snap.Investors).String(),
		Token:          token,
		TokenShort:     TruncateAddress(token, 6, 4),
		CapDisplay:     FormatUnits(snap.Cap, decimals),
		BoughtDisplay:  FormatUnits(snap.Bought, decimals),
		Symbol:         symbol,
		FundedFraction: fraction.String(),
		ProgressOffset: ProgressOffset(fraction).String(),
		Summary:        Summary(snap.Bought, snap.Cap, decimals),
	}
}

// TruncateAddress 保留前 prefix 和后 suffix 个字符, 中间用省略号
func TruncateAddress(addr string, prefix, suffix int) string {
	if prefix < 0 || suffix < 0 || len(addr) <= prefix+suffix {
		return addr
	}
	return fmt.Sprintf("%s…%s", addr[:prefix], addr[len(addr)-suffix:])
}
