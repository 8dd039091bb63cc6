package config

import (
	"strings"

	"github.com/fractionax/marketplace/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 资金池合约默认部署信息 (Core Testnet2)
const (
	DefaultPoolAddress = "0x35B55F36A88240BAbC35F9681163c57608D34CeD"
	DefaultChainID     = 1114
	DefaultRPCURL      = "https://rpc.test2.btcs.network"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Chain     ChainConfig     `mapstructure:"chain"`
	Pool      PoolConfig      `mapstructure:"pool"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	Site      SiteConfig      `mapstructure:"site"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Task      TaskConfig      `mapstructure:"task"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// DatabaseConfig 数据库配置, driver 为 postgres 或 sqlite
type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
	Path     string `mapstructure:"path"` // sqlite 文件路径
}

// IsSQLite 是否使用 sqlite
func (d DatabaseConfig) IsSQLite() bool {
	return strings.EqualFold(d.Driver, "sqlite")
}

// ChainConfig 单链配置
type ChainConfig struct {
	ChainType     string                    `mapstructure:"chain_type"`    // 链类型 (core, ethereum, polygon, etc.)
	ChainId       int64                     `mapstructure:"chain_id"`      // 链ID
	RpcUrl        string                    `mapstructure:"rpc_url"`       // RPC节点URL
	Confirmations uint64                    `mapstructure:"confirmations"` // 交易确认区块数
	Contracts     map[string]ContractConfig `mapstructure:"contracts"`     // 该链上的合约配置
}

// ContractConfig 单个合约配置
type ContractConfig struct {
	Address string `mapstructure:"address"`  // 合约地址
	ABIPath string `mapstructure:"abi_path"` // ABI文件路径, 为空时使用内置ABI
	Enabled bool   `mapstructure:"enabled"`  // 是否启用此合约
}

// PoolConfig 资金池展示与购买参数
type PoolConfig struct {
	Contract  string `mapstructure:"contract"`   // chain.contracts 中的合约名称
	Decimals  int32  `mapstructure:"decimals"`   // 原生币精度
	Symbol    string `mapstructure:"symbol"`     // 原生币符号
	ValueRate string `mapstructure:"value_rate"` // 交易附带金额比例
	Workers   int    `mapstructure:"workers"`    // 购买提交协程数
}

// WalletConfig 服务端签名钱包
type WalletConfig struct {
	PrivateKey string `mapstructure:"private_key"`
}

// SiteConfig 站点配置
type SiteConfig struct {
	BaseURL     string   `mapstructure:"base_url"`
	AnalyticsID string   `mapstructure:"analytics_id"`
	ProjectID   string   `mapstructure:"project_id"` // wallet connect project id
	Routes      []string `mapstructure:"routes"`
}

type RateLimitConfig struct {
	RPS   int `mapstructure:"rps"`
	Burst int `mapstructure:"burst"`
	Idle  int `mapstructure:"idle"` // 客户端空闲多久后回收限流器, 分钟
}

type TaskConfig struct {
	Interval  int `mapstructure:"interval"`   // 回执检查间隔, 秒
	BatchSize int `mapstructure:"batch_size"` // 每次检查的记录数
	DialogTTL int `mapstructure:"dialog_ttl"` // 购买对话框保留时间, 分钟
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, stderr, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

// GetLevel 实现 logger.LogConfig 接口
func (l LogConfig) GetLevel() string {
	return l.Level
}

// GetOutput 实现 logger.LogConfig 接口
func (l LogConfig) GetOutput() string {
	return l.Output
}

// GetFile 实现 logger.LogConfig 接口
func (l LogConfig) GetFile() string {
	return l.File
}

// Load 加载配置: .env -> config.yaml -> 环境变量
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file loaded: %v", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/fractionax")

	if err := v.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	cfg, err := decode(v)
	if err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}
	return cfg
}

// decode 设置默认值并解析配置
func decode(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// 自动读取环境变量, 例如 DATABASE_HOST -> database.host
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "fractionax")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "fractionax.db")

	v.SetDefault("chain.chain_type", "core")
	v.SetDefault("chain.chain_id", DefaultChainID)
	v.SetDefault("chain.rpc_url", DefaultRPCURL)
	v.SetDefault("chain.confirmations", 3)
	v.SetDefault("chain.contracts", map[string]interface{}{
		"pool": map[string]interface{}{
			"address": DefaultPoolAddress,
			"enabled": true,
		},
	})

	v.SetDefault("pool.contract", "pool")
	v.SetDefault("pool.decimals", 18)
	v.SetDefault("pool.symbol", "tCORE2")
	v.SetDefault("pool.value_rate", "0.02")
	v.SetDefault("pool.workers", 16)

	v.SetDefault("site.base_url", "")
	v.SetDefault("site.routes", []string{"/", "/marketplace", "/demo"})

	v.SetDefault("rate_limit.rps", 5)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.idle", 10)

	v.SetDefault("task.interval", 60)
	v.SetDefault("task.batch_size", 50)
	v.SetDefault("task.dialog_ttl", 60)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file", "logs/app.log")
}
