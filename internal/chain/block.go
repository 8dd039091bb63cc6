package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ReceiptReader 查询回执所需的链接口, ethclient.Client 满足该接口
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
}

// ReceiptResult 回执检查结果
type ReceiptResult struct {
	Ready   bool // 已达到确认数
	Success bool // 交易执行成功
}

// ReceiptChecker 交易确认检查
type ReceiptChecker struct {
	reader        ReceiptReader
	confirmations uint64
}

// NewReceiptChecker 创建回执检查器
func NewReceiptChecker(reader ReceiptReader, confirmations uint64) *ReceiptChecker {
	return &ReceiptChecker{reader: reader, confirmations: confirmations}
}

// Check 检查交易是否已确认, 回执不存在时返回未就绪
func (r *ReceiptChecker) Check(ctx context.Context, txHash common.Hash) (ReceiptResult, error) {
	receipt, err := r.reader.TransactionReceipt(ctx, txHash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return ReceiptResult{}, nil
		}
		return ReceiptResult{}, fmt.Errorf("get receipt %s: %w", txHash.Hex(), err)
	}
	if receipt == nil || receipt.BlockNumber == nil {
		return ReceiptResult{}, nil
	}

	latest, err := r.reader.BlockNumber(ctx)
	if err != nil {
		return ReceiptResult{}, fmt.Errorf("get latest block: %w", err)
	}

	mined := receipt.BlockNumber
	required := new(big.Int).Add(mined, new(big.Int).SetUint64(r.confirmations))
	if new(big.Int).SetUint64(latest).Cmp(required) < 0 {
		return ReceiptResult{}, nil
	}

	return ReceiptResult{
		Ready:   true,
		Success: receipt.Status == types.ReceiptStatusSuccessful,
	}, nil
}
