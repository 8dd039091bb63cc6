package chain

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/fractionax/marketplace/internal/config"
	"github.com/fractionax/marketplace/internal/logger"
)

var supportedChainTypes = []string{"core", "ethereum", "polygon", "bsc", "arbitrum", "optimism", "scroll"}

// Manager 单链管理器
type Manager struct {
	mu        sync.RWMutex
	contracts map[string]*Contract // 合约映射: "contractName" -> Contract
	client    *ethclient.Client    // 链客户端
	config    config.ChainConfig   // 存储链配置
}

// NewManager 创建单链管理器
func NewManager(ctx context.Context, cfg config.ChainConfig) (*Manager, error) {
	manager := &Manager{
		contracts: make(map[string]*Contract),
		config:    cfg,
	}

	client, err := createChainClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize client: %w", err)
	}
	manager.client = client

	if err := manager.initContracts(cfg); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to initialize contracts: %w", err)
	}

	return manager, nil
}

// initContracts 初始化所有启用的合约
func (m *Manager) initContracts(cfg config.ChainConfig) error {
	for contractName, contractCfg := range cfg.Contracts {
		if !contractCfg.Enabled {
			logger.Info("Skipping disabled contract: %s", contractName)
			continue
		}

		contract, err := NewContract(contractName, contractCfg, cfg)
		if err != nil {
			return fmt.Errorf("failed to create contract %s: %w", contractName, err)
		}

		m.contracts[contractName] = contract
		logger.Info("Initialized contract: %s (address: %s)", contractName, contractCfg.Address)
	}

	logger.Info("Successfully initialized %d contracts", len(m.contracts))
	return nil
}

// createChainClient 创建链客户端并测试连接
func createChainClient(ctx context.Context, cfg config.ChainConfig) (*ethclient.Client, error) {
	if cfg.RpcUrl == "" {
		return nil, fmt.Errorf("no RPC URL configured")
	}
	if !slices.Contains(supportedChainTypes, cfg.ChainType) {
		return nil, fmt.Errorf("unsupported chain type %s, supported types: %v", cfg.ChainType, supportedChainTypes)
	}

	logger.Info("Creating %s client connection (RPC: %s)", cfg.ChainType, cfg.RpcUrl)
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.ChainType, err)
	}

	chainId, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("client connection test failed (%s): %w", cfg.ChainType, err)
	}
	if cfg.ChainId != 0 && chainId.Int64() != cfg.ChainId {
		client.Close()
		return nil, fmt.Errorf("chain id mismatch: configured %d, node reports %s", cfg.ChainId, chainId)
	}

	return client, nil
}

// GetClient 获取客户端
func (m *Manager) GetClient() *ethclient.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

// GetContract 获取指定合约
func (m *Manager) GetContract(contractName string) (*Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	contract, exists := m.contracts[contractName]
	if !exists {
		return nil, fmt.Errorf("contract %s not found", contractName)
	}
	return contract, nil
}

// Pool 绑定指定名称的资金池合约
func (m *Manager) Pool(contractName string) (*Pool, error) {
	contract, err := m.GetContract(contractName)
	if err != nil {
		return nil, err
	}
	client := m.GetClient()
	return NewPool(contract, client, client), nil
}

// GetChainId 获取链ID
func (m *Manager) GetChainId() int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config.ChainId
}

// Receipts 回执确认检查器
func (m *Manager) Receipts() *ReceiptChecker {
	return NewReceiptChecker(m.GetClient(), m.config.Confirmations)
}

// GetHealthStatus 获取健康状态
func (m *Manager) GetHealthStatus(ctx context.Context) map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	health := map[string]interface{}{
		"chain_type":    m.config.ChainType,
		"chain_id":      m.config.ChainId,
		"client_status": "connected",
	}

	if m.client == nil {
		health["client_status"] = "not_initialized"
	} else if _, err := m.client.BlockNumber(ctx); err != nil {
		health["client_status"] = "disconnected"
	}

	contracts := make(map[string]string, len(m.contracts))
	for name, contract := range m.contracts {
		contracts[name] = contract.GetAddress().Hex()
	}
	health["contracts"] = contracts

	return health
}

// Close 关闭管理器
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.client != nil {
		m.client.Close()
	}
	logger.Info("Chain manager closed")
}
