package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Pool 资金池合约绑定
type Pool struct {
	contract *Contract
	bound    *bind.BoundContract
}

// NewPool 绑定资金池合约, transactor 为空时只能读
func NewPool(contract *Contract, caller bind.ContractCaller, transactor bind.ContractTransactor) *Pool {
	return &Pool{
		contract: contract,
		bound:    bind.NewBoundContract(contract.GetAddress(), contract.GetABI(), caller, transactor, nil),
	}
}

// Address 合约地址
func (p *Pool) Address() common.Address {
	return p.contract.GetAddress()
}

// Cap 募集上限 (最小单位)
func (p *Pool) Cap(ctx context.Context) (*big.Int, error) {
	return p.callUint(ctx, "cap")
}

// Bought 已募集金额 (最小单位)
func (p *Pool) Bought(ctx context.Context) (*big.Int, error) {
	return p.callUint(ctx, "bought")
}

// Investors 投资人数
func (p *Pool) Investors(ctx context.Context) (*big.Int, error) {
	return p.callUint(ctx, "investors")
}

// Token 份额代币地址
func (p *Pool) Token(ctx context.Context) (common.Address, error) {
	out, err := p.call(ctx, "token")
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

// Buy 调用 buy(amount), value 随交易发送
func (p *Pool) Buy(opts *bind.TransactOpts, amount, value *big.Int) (*types.Transaction, error) {
	if opts == nil {
		return nil, fmt.Errorf("buy: missing transact options")
	}
	txOpts := *opts
	txOpts.Value = value

	tx, err := p.bound.Transact(&txOpts, "buy", amount)
	if err != nil {
		return nil, fmt.Errorf("buy on %s: %w", p.contract.GetName(), err)
	}
	return tx, nil
}

func (p *Pool) callUint(ctx context.Context, method string) (*big.Int, error) {
	out, err := p.call(ctx, method)
	if err != nil {
		return nil, err
	}
	return abi.ConvertType(out[0], new(big.Int)).(*big.Int), nil
}

func (p *Pool) call(ctx context.Context, method string) ([]interface{}, error) {
	var out []interface{}
	if err := p.bound.Call(&bind.CallOpts{Context: ctx}, &out, method); err != nil {
		return nil, fmt.Errorf("call %s.%s: %w", p.contract.GetName(), method, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("call %s.%s: empty result", p.contract.GetName(), method)
	}
	return out, nil
}
