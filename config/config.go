// Package config 命令行工具的分层配置：默认值 < 配置文件 < 环境变量 < 命令行参数。
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/zooyer/iges"
	"github.com/zooyer/iges/render"
)

const (
	DefaultFile   = "igesview.yaml"
	EnvPrefix     = "IGESVIEW_"
	OutputTable   = "table"
	OutputJSON    = "json"
	DefaultOutput = OutputTable
)

type Config struct {
	Width      int     `koanf:"width"`
	Height     int     `koanf:"height"`
	Margin     float64 `koanf:"margin"`
	Background string  `koanf:"background"`
	LineWidth  float64 `koanf:"line_width"`
	PointSize  float64 `koanf:"point_size"`
	Verbose    bool    `koanf:"verbose"`
	Debug      bool    `koanf:"debug"` // 目录指针交叉校验
	Workers    int     `koanf:"workers"`
	Output     string  `koanf:"output"`

	// File 实际读取的配置文件，没有时为空
	File string `koanf:"-"`
}

func defaults() map[string]any {
	r := render.DefaultOptions()
	return map[string]any{
		"width":      r.Width,
		"height":     r.Height,
		"margin":     r.Margin,
		"background": r.Background,
		"line_width": r.LineWidth,
		"point_size": r.PointSize,
		"verbose":    false,
		"debug":      false,
		"workers":    0,
		"output":     DefaultOutput,
	}
}

// findConfigFile 显式指定的文件优先，其次是当前目录下的 igesview.yaml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load 依次加载各层配置，flags 中只有显式设置过的参数生效
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// IGESVIEW_LINE_WIDTH -> line_width
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d", c.Workers)
	}
	switch c.Output {
	case OutputTable, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q", c.Output)
	}
	return nil
}

// Render 渲染参数
func (c *Config) Render() render.Options {
	return render.Options{
		Width:      c.Width,
		Height:     c.Height,
		Margin:     c.Margin,
		Background: c.Background,
		LineWidth:  c.LineWidth,
		PointSize:  c.PointSize,
	}
}

// Options 解码参数，workers 为 0 时使用默认并发数
func (c *Config) Options() []iges.Option {
	opts := []iges.Option{iges.WithDebug(c.Debug)}
	if c.Workers > 0 {
		opts = append(opts, iges.WithWorkers(c.Workers))
	}
	return opts
}
