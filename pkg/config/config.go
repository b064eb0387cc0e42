package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kasuganosora/sqlpage/pkg/sqlutil"
	"github.com/spf13/viper"
)

// EnvConfigPath 指定配置文件路径的环境变量
const EnvConfigPath = "SQLPAGE_CONFIG"

// Config 应用程序配置
type Config struct {
	Log        LogConfig        `mapstructure:"log"`
	Optimizer  OptimizerConfig  `mapstructure:"optimizer"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Format     FormatConfig     `mapstructure:"format"`
	Database   DatabaseConfig   `mapstructure:"database"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or text
}

// OptimizerConfig COUNT 优化配置
type OptimizerConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Default string `mapstructure:"default"` // 注册名
}

// PaginationConfig 分页配置
type PaginationConfig struct {
	DefaultSize int64 `mapstructure:"default_size"`
	MaxSize     int64 `mapstructure:"max_size"` // 0 表示不限制
	OpenSort    bool  `mapstructure:"open_sort"`
}

// FormatConfig SQL 格式化配置
type FormatConfig struct {
	Pretty bool   `mapstructure:"pretty"`
	Indent string `mapstructure:"indent"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // mysql, postgres, sqlite
	DSN    string `mapstructure:"dsn"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Optimizer: OptimizerConfig{
			Enabled: true,
			Default: sqlutil.DefaultOptimizerName,
		},
		Pagination: PaginationConfig{
			DefaultSize: 10,
			MaxSize:     1000,
			OpenSort:    true,
		},
		Format: FormatConfig{
			Pretty: false,
			Indent: "    ",
		},
		Database: DatabaseConfig{
			Driver: "sqlite",
			DSN:    ":memory:",
		},
	}
}

func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("optimizer.enabled", cfg.Optimizer.Enabled)
	v.SetDefault("optimizer.default", cfg.Optimizer.Default)
	v.SetDefault("pagination.default_size", cfg.Pagination.DefaultSize)
	v.SetDefault("pagination.max_size", cfg.Pagination.MaxSize)
	v.SetDefault("pagination.open_sort", cfg.Pagination.OpenSort)
	v.SetDefault("format.pretty", cfg.Format.Pretty)
	v.SetDefault("format.indent", cfg.Format.Indent)
	v.SetDefault("database.driver", cfg.Database.Driver)
	v.SetDefault("database.dsn", cfg.Database.DSN)
}

// LoadConfig 从文件加载配置，格式由扩展名决定（yaml/json/toml）
// 环境变量 SQLPAGE_<SECTION>_<KEY> 覆盖文件内容
func LoadConfig(configPath string) (*Config, error) {
	// 如果没有指定配置文件，使用默认配置
	if configPath == "" {
		return DefaultConfig(), nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	v := viper.New()
	setDefaults(v, DefaultConfig())
	v.SetConfigFile(configPath)
	v.SetEnvPrefix("SQLPAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadConfigOrDefault 尝试从环境变量和常见位置加载配置文件
func LoadConfigOrDefault() *Config {
	possiblePaths := []string{
		"config.yaml",
		"config.json",
		"./config/config.yaml",
		"/etc/sqlpage/config.yaml",
	}

	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		if config, err := LoadConfig(envPath); err == nil {
			return config
		}
	}

	for _, path := range possiblePaths {
		if absPath, err := filepath.Abs(path); err == nil {
			if config, err := LoadConfig(absPath); err == nil {
				return config
			}
		}
	}

	return DefaultConfig()
}

// validateConfig 验证配置
func validateConfig(config *Config) error {
	if config.Pagination.DefaultSize < 0 {
		return fmt.Errorf("默认分页大小不能为负数: %d", config.Pagination.DefaultSize)
	}
	if config.Pagination.MaxSize < 0 {
		return fmt.Errorf("最大分页大小不能为负数: %d", config.Pagination.MaxSize)
	}
	if config.Pagination.MaxSize > 0 && config.Pagination.DefaultSize > config.Pagination.MaxSize {
		return fmt.Errorf("默认分页大小 %d 超过最大分页大小 %d", config.Pagination.DefaultSize, config.Pagination.MaxSize)
	}
	if config.Optimizer.Enabled && config.Optimizer.Default == "" {
		return fmt.Errorf("启用 COUNT 优化时必须指定优化策略")
	}
	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("无效的日志格式: %s", config.Log.Format)
	}
	return nil
}

// OptimizerName 返回生效的 COUNT 优化策略名，未启用时为 simple
func (c *Config) OptimizerName() string {
	if !c.Optimizer.Enabled {
		return sqlutil.SimpleOptimizerName
	}
	return c.Optimizer.Default
}
