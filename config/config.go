package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
}

type WebConfig struct {
	Host  string `yaml:"host" json:"host"`
	Port  int    `yaml:"port" json:"port"`
	Debug bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type DataConfig struct {
	Dir string `yaml:"dir" json:"dir"`
}

type ParkingConfig struct {
	// Strategy selects the fee policy at boot: standard, weekend or vip.
	Strategy string `yaml:"strategy" json:"strategy"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system" json:"system"`
	Web     WebConfig     `yaml:"web" json:"web"`
	Logger  LogConfig     `yaml:"logger" json:"logger"`
	Data    DataConfig    `yaml:"data" json:"data"`
	Parking ParkingConfig `yaml:"parking" json:"parking"`
}

func (c *AppConfig) WebListen() string {
	return fmt.Sprintf("%s:%d", c.Web.Host, c.Web.Port)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "catalogd",
		Location: "America/Bogota",
		Workdir:  "/var/catalogd",
	},
	Web: WebConfig{
		Host:  "0.0.0.0",
		Port:  1816,
		Debug: false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: false,
		Filename:   "/var/catalogd/catalogd.log",
	},
	Data: DataConfig{
		Dir: "/var/catalogd/data",
	},
	Parking: ParkingConfig{
		Strategy: "standard",
	},
}

func setEnvValue(name string, f func(v string)) {
	if evalue := os.Getenv(name); evalue != "" {
		f(evalue)
	}
}

// LoadConfig reads the yaml config file and applies CATALOGD_* environment
// overrides. A missing file yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("CATALOGD_SYSTEM_WORKDIR", func(v string) { cfg.System.Workdir = v })
	setEnvValue("CATALOGD_SYSTEM_LOCATION", func(v string) { cfg.System.Location = v })
	setEnvValue("CATALOGD_WEB_HOST", func(v string) { cfg.Web.Host = v })
	setEnvValue("CATALOGD_WEB_PORT", func(v string) { cfg.Web.Port = cast.ToInt(v) })
	setEnvValue("CATALOGD_WEB_DEBUG", func(v string) { cfg.Web.Debug = cast.ToBool(v) })
	setEnvValue("CATALOGD_LOGGER_MODE", func(v string) { cfg.Logger.Mode = v })
	setEnvValue("CATALOGD_LOGGER_FILE_ENABLE", func(v string) { cfg.Logger.FileEnable = cast.ToBool(v) })
	setEnvValue("CATALOGD_LOGGER_FILENAME", func(v string) { cfg.Logger.Filename = v })
	setEnvValue("CATALOGD_DATA_DIR", func(v string) { cfg.Data.Dir = v })
	setEnvValue("CATALOGD_PARKING_STRATEGY", func(v string) { cfg.Parking.Strategy = v })

	if cfg.Data.Dir == "" {
		cfg.Data.Dir = filepath.Join(cfg.System.Workdir, "data")
	}
	return cfg
}
