// Package funding 读取资金池合约并计算展示用的募集进度.
package funding

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fractionax/marketplace/internal/logger"
	"github.com/fractionax/marketplace/internal/metrics"
	"github.com/panjf2000/ants/v2"
)

// PoolCaller 资金池的只读调用, chain.Pool 实现了该接口
type PoolCaller interface {
	Cap(ctx context.Context) (*big.Int, error)
	Bought(ctx context.Context) (*big.Int, error)
	Investors(ctx context.Context) (*big.Int, error)
	Token(ctx context.Context) (common.Address, error)
}

// Reader 资金池读取器
type Reader struct {
	caller  PoolCaller
	workers *ants.Pool
}

// NewReader 创建读取器, 四次读取提交到 workers 并发执行
func NewReader(caller PoolCaller, workers *ants.Pool) *Reader {
	return &Reader{caller: caller, workers: workers}
}

// Refresh 发起四次独立读取, 每个结果只写自己的字段; 失败的读取记录日志并保留原值
func (r *Reader) Refresh(ctx context.Context, state *State) error {
	reads := []struct {
		name string
		run  func() error
	}{
		{"cap", func() error {
			v, err := r.caller.Cap(ctx)
			if err == nil {
				state.setCap(v)
			}
			return err
		}},
		{"bought", func() error {
			v, err := r.caller.Bought(ctx)
			if err == nil {
				state.setBought(v)
			}
			return err
		}},
		{"investors", func() error {
			v, err := r.caller.Investors(ctx)
			if err == nil {
				state.setInvestors(v)
			}
			return err
		}},
		{"token", func() error {
			v, err := r.caller.Token(ctx)
			if err == nil {
				state.setToken(v)
			}
			return err
		}},
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	record := func(name string, err error) {
		metrics.RecordPoolRead(name, err)
		if err == nil {
			return
		}
		logger.Error("Failed to read pool %s: %v", name, err)
		mu.Lock()
		errs = append(errs, fmt.Errorf("read %s: %w", name, err))
		mu.Unlock()
	}

	for _, read := range reads {
		read := read
		wg.Add(1)
		err := r.workers.Submit(func() {
			defer wg.Done()
			record(read.name, read.run())
		})
		if err != nil {
			wg.Done()
			record(read.name, err)
		}
	}
	wg.Wait()

	return errors.Join(errs...)
}
