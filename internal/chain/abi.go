package chain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// PoolABI 资金池合约ABI (只包含用到的方法)
const PoolABI = `[
	{"inputs": [], "name": "cap", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "bought", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "investors", "outputs": [{"internalType": "uint256", "name": "", "type": "uint256"}], "stateMutability": "view", "type": "function"},
	{"inputs": [], "name": "token", "outputs": [{"internalType": "address", "name": "", "type": "address"}], "stateMutability": "view", "type": "function"},
	{"inputs": [{"internalType": "uint256", "name": "amount", "type": "uint256"}], "name": "buy", "outputs": [], "stateMutability": "payable", "type": "function"}
]`

// LoadABI 从文件加载ABI, 路径为空时使用内置的资金池ABI
func LoadABI(path string) (abi.ABI, error) {
	if path == "" {
		return abi.JSON(strings.NewReader(PoolABI))
	}

	abiData, err := os.ReadFile(path)
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to load ABI from %s: %w", path, err)
	}
	return ParseABI(abiData)
}

// ParseABI 解析ABI, 支持完整编译输出 ({"abi": [...]}) 或ABI数组
func ParseABI(data []byte) (abi.ABI, error) {
	var compiledOutput struct {
		ABI json.RawMessage `json:"abi"`
	}

	if err := json.Unmarshal(data, &compiledOutput); err == nil && compiledOutput.ABI != nil {
		parsed, err := abi.JSON(bytes.NewReader(compiledOutput.ABI))
		if err != nil {
			return abi.ABI{}, fmt.Errorf("failed to parse ABI from compiled output: %w", err)
		}
		return parsed, nil
	}

	parsed, err := abi.JSON(bytes.NewReader(data))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("failed to parse ABI: %w", err)
	}
	return parsed, nil
}
