package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// DefaultFile 默认的设置文件
const DefaultFile = "config.json"

// Config 结构体：对应 config.json 的内容，环境变量可以覆盖
type Config struct {
	SpritesPath   string  `json:"sprites_path" env:"PET_SPRITES"`    // 精灵表 (json / yaml)
	Creature      string  `json:"creature" env:"PET_CREATURE"`       // 用哪只宠物
	DockImagePath string  `json:"dock_image" env:"PET_DOCK_IMAGE"`   // 窝的图片，决定窝的大小
	DockMargin    int     `json:"dock_margin" env:"PET_DOCK_MARGIN"` // 窝离屏幕右下角的距离
	Smoothing     float64 `json:"smoothing" env:"PET_SMOOTHING"`     // 跟随的平滑系数 α
	TPS           int     `json:"tps" env:"PET_TPS"`                 // 跟随时每秒 tick 次数
	IdleTPS       int     `json:"idle_tps" env:"PET_IDLE_TPS"`       // 停靠时的省电 TPS
	Debug         bool    `json:"debug" env:"PET_DEBUG"`             // 打印状态切换
}

// NewDefault 生成一份默认配置
// 当找不到配置文件时，用这个“保底”
func NewDefault() *Config {
	return &Config{
		SpritesPath:   "sprites.json",
		Creature:      "cat",
		DockImagePath: "sprites/dock.png",
		DockMargin:    48,
		Smoothing:     0.1,
		TPS:           60,
		IdleTPS:       20,
	}
}

// Load 从硬盘读取配置，再用环境变量覆盖
func Load(filename string) (*Config, error) {
	cfg := NewDefault()

	// 1. 尝试读文件
	if err := readJSON(filename, cfg); err != nil {
		return nil, err
	}

	// 2. 环境变量覆盖 (没设置的字段保持原值)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse env: %v", ErrInvalidSetting, err)
	}

	// 3. 检查数值
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func readJSON(filename string, cfg *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		// 文件不存在直接用默认配置，不算报错
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: open %s: %v", ErrConfiguration, filename, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrConfiguration, filename, err)
	}
	return nil
}

// Validate 检查数值范围
func (c *Config) Validate() error {
	switch {
	case c.SpritesPath == "":
		return fmt.Errorf("%w: sprites_path is empty", ErrInvalidSetting)
	case c.Creature == "":
		return fmt.Errorf("%w: creature is empty", ErrInvalidSetting)
	case c.DockImagePath == "":
		return fmt.Errorf("%w: dock_image is empty", ErrInvalidSetting)
	case c.Smoothing <= 0 || c.Smoothing > 1:
		return fmt.Errorf("%w: smoothing %v not in (0, 1]", ErrInvalidSetting, c.Smoothing)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps %d < 1", ErrInvalidSetting, c.TPS)
	case c.IdleTPS < 1:
		return fmt.Errorf("%w: idle_tps %d < 1", ErrInvalidSetting, c.IdleTPS)
	case c.DockMargin < 0:
		return fmt.Errorf("%w: dock_margin %d < 0", ErrInvalidSetting, c.DockMargin)
	}
	return nil
}

// Save 写出配置 (spritecheck -init 用)，写之前先检查，坏配置不落盘
func Save(cfg *Config, filename string) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", filename, err)
	}
	// Close 的错误也要报，否则写满磁盘时会留下半个文件
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	return nil
}
