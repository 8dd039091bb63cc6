package registrar

import (
	"errors"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInvalidWallet = errors.New("invalid EVM wallet address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form 意向登记表单
type Form struct {
	Email      string `json:"email"`
	EVMWallet  string `json:"evmWallet"`
	InterestID int64  `json:"interestId"`
}

// FieldErrors 字段 -> 提示信息
type FieldErrors map[string]string

// ValidEmail 邮箱格式校验
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidAddress 42 位 0x 开头的十六进制地址; 大小写混合时必须符合 EIP-55 校验和
func ValidAddress(addr string) bool {
	if len(addr) != 42 || !strings.HasPrefix(addr, "0x") || !common.IsHexAddress(addr) {
		return false
	}
	hex := addr[2:]
	if hex == strings.ToLower(hex) || hex == strings.ToUpper(hex) {
		return true
	}
	return common.HexToAddress(addr).Hex() == addr
}

// Validate 返回不合法字段的提示信息
func (f Form) Validate() FieldErrors {
	errs := FieldErrors{}
	if !ValidEmail(f.Email) {
		errs["email"] = "Please enter a valid email address"
	}
	if !ValidAddress(f.EVMWallet) {
		errs["evmWallet"] = "Please enter a valid EVM wallet address"
	}
	return errs
}

// CanSubmit 两个字段都合法时才允许提交
func (f Form) CanSubmit() bool {
	return len(f.Validate()) == 0
}

// Err 合并所有字段错误, 表单合法时返回 nil
func (f Form) Err() error {
	var errs []error
	if !ValidEmail(f.Email) {
		errs = append(errs, ErrInvalidEmail)
	}
	if !ValidAddress(f.EVMWallet) {
		errs = append(errs, ErrInvalidWallet)
	}
	return errors.Join(errs...)
}
