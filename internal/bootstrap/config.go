package bootstrap

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"checkers/internal/checkers"
)

type Config struct {
	LogLevel        string `mapstructure:"LOG_LEVEL"`
	LogFile         string `mapstructure:"LOG_FILE"`
	View            string `mapstructure:"VIEW"`
	Color           bool   `mapstructure:"COLOR"`
	StartPosition   string `mapstructure:"START_POSITION"`
	RepetitionLimit int    `mapstructure:"REPETITION_LIMIT"`
}

const envPrefix = "CHECKERS"

// Setup 读取顺序：默认值 < 配置文件 < .env / 环境变量（CHECKERS_*）。
// cfgPath 为空时只用默认值和环境变量。
func Setup(cfgPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "checkers.log")
	v.SetDefault("VIEW", "1")
	v.SetDefault("COLOR", true)
	v.SetDefault("START_POSITION", "")
	v.SetDefault("REPETITION_LIMIT", checkers.DefaultRepetitionLimit)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Position 配置里的起始局面；空串表示标准开局（返回 nil）。
func (c *Config) Position() (*checkers.Position, error) {
	if c.StartPosition == "" {
		return nil, nil
	}
	pos, err := checkers.DecodePosition(c.StartPosition)
	if err != nil {
		return nil, fmt.Errorf("start position %q: %w", c.StartPosition, err)
	}
	return pos, nil
}
