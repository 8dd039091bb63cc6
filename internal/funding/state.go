package funding

import (
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// Snapshot 资金池快照, 不持久化
type Snapshot struct {
	Cap       *big.Int
	Bought    *big.Int
	Investors *big.Int
	Token     common.Address
}

// State 一次视图挂载的资金池状态, 每个字段独立写入
type State struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewState 初始状态: 数值为 0, token 为零地址
func NewState() *State {
	return &State{snap: Snapshot{
		Cap:       new(big.Int),
		Bought:    new(big.Int),
		Investors: new(big.Int),
	}}
}

// Snapshot 返回当前状态的拷贝
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Cap:       new(big.Int).Set(s.snap.Cap),
		Bought:    new(big.Int).Set(s.snap.Bought),
		Investors: new(big.Int).Set(s.snap.Investors),
		Token:     s.snap.Token,
	}
}

func (s *State) setCap(v *big.Int) {
	s.mu.Lock()
	s.snap.Cap = v
	s.mu.Unlock()
}

func (s *State) setBought(v *big.Int) {
	s.mu.Lock()
	s.snap.Bought = v
	s.mu.Unlock()
}

func (s *State) setInvestors(v *big.Int) {
	s.mu.Lock()
	s.snap.Investors = v
	s.mu.Unlock()
}

func (s *State) setToken(v common.Address) {
	s.mu.Lock()
	s.snap.Token = v
	s.mu.Unlock()
}
