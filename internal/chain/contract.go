package chain

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fractionax/marketplace/internal/config"
)

// Contract 合约工具类
type Contract struct {
	address common.Address // 合约地址
	abi     abi.ABI        // 合约ABI
	name    string         // 合约名称
	chainId int64          // 链ID
}

// NewContract 创建合约实例
func NewContract(name string, contractCfg config.ContractConfig, chainCfg config.ChainConfig) (*Contract, error) {
	if !common.IsHexAddress(contractCfg.Address) {
		return nil, fmt.Errorf("invalid address %q for contract %s", contractCfg.Address, name)
	}

	parsedABI, err := LoadABI(contractCfg.ABIPath)
	if err != nil {
		return nil, err
	}

	return &Contract{
		address: common.HexToAddress(contractCfg.Address),
		abi:     parsedABI,
		name:    name,
		chainId: chainCfg.ChainId,
	}, nil
}

// GetAddress 获取合约地址
func (c *Contract) GetAddress() common.Address {
	return c.address
}

// GetABI 获取合约ABI
func (c *Contract) GetABI() abi.ABI {
	return c.abi
}

// GetName 获取合约名称
func (c *Contract) GetName() string {
	return c.name
}

// GetChainId 获取链ID
func (c *Contract) GetChainId() int64 {
	return c.chainId
}
