package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	// Filename of the bbolt key-value store, relative to System.Workdir
	// unless absolute.
	Filename string `yaml:"filename"`
}

// FlakinessConfig tunes the simulated remote round trip. Disable for
// deterministic runs.
type FlakinessConfig struct {
	Enabled     bool    `yaml:"enabled"`
	MinDelayMs  int     `yaml:"min_delay_ms"`
	MaxDelayMs  int     `yaml:"max_delay_ms"`
	FailureRate float64 `yaml:"failure_rate"`
	CancelRate  float64 `yaml:"cancel_rate"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"` // development | production
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System    SysConfig       `yaml:"system"`
	Web       WebConfig       `yaml:"web"`
	Storage   StorageConfig   `yaml:"storage"`
	Flakiness FlakinessConfig `yaml:"flakiness"`
	Logger    LogConfig       `yaml:"logger"`
}

// StorePath resolves the key-value store file location.
func (c *AppConfig) StorePath() string {
	if filepath.IsAbs(c.Storage.Filename) {
		return c.Storage.Filename
	}
	return filepath.Join(c.System.Workdir, c.Storage.Filename)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "beautyfind",
		Location: "America/New_York",
		Workdir:  "/var/beautyfind",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1880,
	},
	Storage: StorageConfig{
		Filename: "beautyfind.db",
	},
	Flakiness: FlakinessConfig{
		Enabled:     true,
		MinDelayMs:  800,
		MaxDelayMs:  1500,
		FailureRate: 0.05,
		CancelRate:  0.10,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/beautyfind/beautyfind.log",
	},
}

func setEnvValue(name string, f func(v string)) {
	if v, ok := os.LookupEnv(name); ok {
		f(v)
	}
}

// LoadConfig reads the YAML config file and applies environment overrides.
// A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("BEAUTYFIND_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("BEAUTYFIND_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvValue("BEAUTYFIND_DEBUG", func(v string) { cfg.System.Debug = cast.ToBool(v) })
	setEnvValue("BEAUTYFIND_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("BEAUTYFIND_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("BEAUTYFIND_STORAGE_FILE", func(v string) { cfg.Storage.Filename = v })
	setEnvValue("BEAUTYFIND_FLAKINESS", func(v string) { cfg.Flakiness.Enabled = cast.ToBool(v) })
	setEnvValue("BEAUTYFIND_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })

	return cfg
}
