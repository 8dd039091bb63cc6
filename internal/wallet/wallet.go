// Package wallet 提供发送方身份与交易签名, 通过依赖注入传给需要的组件.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/fractionax/marketplace/internal/config"
)

// ZeroAddress 未连接钱包时的发送方占位地址
var ZeroAddress = common.Address{}

// ErrNotConnected 钱包未连接
var ErrNotConnected = errors.New("wallet not connected")

// Account 当前连接状态
type Account struct {
	Address   common.Address `json:"address"`
	Connected bool           `json:"connected"`
}

// Connection 钱包连接状态提供者
type Connection interface {
	Account() Account
	Transactor(ctx context.Context) (*bind.TransactOpts, error)
}

// SenderAddress 发送方地址, 未连接时返回 ZeroAddress
func SenderAddress(conn Connection) common.Address {
	if conn == nil {
		return ZeroAddress
	}
	account := conn.Account()
	if !account.Connected {
		return ZeroAddress
	}
	return account.Address
}

// KeyedConnection 使用私钥签名的连接; 服务端托管账户, 所有购买都由该账户发出
type KeyedConnection struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
	chainId    *big.Int
}

// NewKeyedConnection 解析私钥创建连接
func NewKeyedConnection(hexKey string, chainId int64) (*KeyedConnection, error) {
	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	return &KeyedConnection{
		privateKey: privateKey,
		address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		chainId:    big.NewInt(chainId),
	}, nil
}

// Account 实现 Connection
func (k *KeyedConnection) Account() Account {
	return Account{Address: k.address, Connected: true}
}

// Transactor 实现 Connection
func (k *KeyedConnection) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(k.privateKey, k.chainId)
	if err != nil {
		return nil, fmt.Errorf("create transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

// Disconnected 未连接钱包
type Disconnected struct{}

// Account 实现 Connection
func (Disconnected) Account() Account {
	return Account{Address: ZeroAddress}
}

// Transactor 实现 Connection
func (Disconnected) Transactor(ctx context.Context) (*bind.TransactOpts, error) {
	return nil, ErrNotConnected
}

// FromConfig 根据配置创建连接, 未配置私钥时视为未连接
func FromConfig(cfg config.WalletConfig, chainId int64) (Connection, error) {
	if cfg.PrivateKey == "" {
		return Disconnected{}, nil
	}
	return NewKeyedConnection(cfg.PrivateKey, chainId)
}
