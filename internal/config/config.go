package config

import (
	"os"

	"github.com/san-kum/popgrowth/internal/logistic"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme       = "cyberpunk"
	DefaultChartHeight = 15
	DefaultChartWidth  = 60
	DefaultTableRows   = 12
	DefaultSVGHeight   = 400
	DefaultSVGWidth    = 720
	DefaultAddr        = ":8080"
	DefaultLogLevel    = "info"
)

type Config struct {
	Params      logistic.Params `yaml:"params"`
	Theme       string          `yaml:"theme"`
	ChartHeight int             `yaml:"chart_height"`
	ChartWidth  int             `yaml:"chart_width"`
	TableRows   int             `yaml:"table_rows"`
	LogLevel    string          `yaml:"log_level"`
	Server      ServerConfig    `yaml:"server"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	SVGWidth       int      `yaml:"svg_width"`
	SVGHeight      int      `yaml:"svg_height"`
}

func DefaultConfig() *Config {
	return &Config{
		Params:      logistic.DefaultParams(),
		Theme:       DefaultTheme,
		ChartHeight: DefaultChartHeight,
		ChartWidth:  DefaultChartWidth,
		TableRows:   DefaultTableRows,
		LogLevel:    DefaultLogLevel,
		Server: ServerConfig{
			Addr:           DefaultAddr,
			AllowedOrigins: []string{"*"},
			SVGWidth:       DefaultSVGWidth,
			SVGHeight:      DefaultSVGHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyPreset replaces the parameters with the named preset's.
func (c *Config) ApplyPreset(name string) bool {
	p, ok := GetPreset(name)
	if !ok {
		return false
	}
	c.Params = p.Params
	return true
}
