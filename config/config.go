package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

var GConfig *Config

func Init(config []byte) {
	initFromYaml(config)
	initFromEnv()
	err := GConfig.Verify()
	if err != nil {
		panic(err)
	}
}

func initFromYaml(config []byte) {
	err := yaml.Unmarshal(config, &GConfig)
	if err != nil {
		panic(err)
	}
}

// initFromEnv overlays process environment values on top of the yaml file.
// Environment wins only where the yaml left the field empty, so the
// documented credential precedence stays: explicit value > config file > env.
func initFromEnv() {
	if GConfig == nil {
		GConfig = &Config{}
	}
	fromEnv := Config{}
	if err := env.Parse(&fromEnv); err != nil {
		panic(err)
	}
	if GConfig.Gemini.APIKey == "" {
		GConfig.Gemini.APIKey = fromEnv.Gemini.APIKey
	}
	if GConfig.Gemini.BaseURL == "" {
		GConfig.Gemini.BaseURL = fromEnv.Gemini.BaseURL
	}
}

type Config struct {
	StorageEnabled  bool   `yaml:"storage_enabled"`
	StorageSupplier string `yaml:"storage_supplier"`
	URLExpires      string `yaml:"url_expires"`
	LogLevel        string `yaml:"log_level"`
	LogFile         string `yaml:"log_file"`
	LogMaxSize      int    `yaml:"log_max_size"`
	LogMaxBackups   int    `yaml:"log_max_backups"`
	LogMaxAge       int    `yaml:"log_max_age"`
	AliOss          `yaml:"ali_oss"`
	MySQL           `yaml:"mysql"`
	Gemini          `yaml:"gemini"`
}

func (c *Config) Verify() error {
	if !c.StorageEnabled {
		return fmt.Errorf("storage_enabled must be true")
	}
	if c.StorageSupplier != "ali_oss" {
		return fmt.Errorf("storage_supplier must be ali_oss")
	}
	if c.URLExpires != "" {
		if _, err := time.ParseDuration(c.URLExpires); err != nil {
			return err
		}
	}
	if c.Gemini.RequestTimeout != "" {
		if _, err := time.ParseDuration(c.Gemini.RequestTimeout); err != nil {
			return err
		}
	}
	return nil
}

type AliOss struct {
	AccessKeyId     string `yaml:"access_key_id"`
	AccessKeySecret string `yaml:"access_key_secret"`
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	Bucket          string `yaml:"bucket"`
	Directory       string `yaml:"directory"`
}

type MySQL struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     string `yaml:"password"`
	Database     string `yaml:"database"`
	Charset      string `yaml:"charset"`
	MaxIdleConns int    `yaml:"max_idle_conns"`
	MaxOpenConns int    `yaml:"max_open_conns"`
}

// Gemini carries everything needed to reach the generative image endpoint.
// The key is never embedded in source; it comes from the yaml file or, failing
// that, the GEMINI_API_KEY environment variable.
type Gemini struct {
	APIKey         string `yaml:"api_key" env:"GEMINI_API_KEY"`
	BaseURL        string `yaml:"base_url" env:"GEMINI_BASE_URL"`
	Model          string `yaml:"model"`
	RequestTimeout string `yaml:"request_timeout"`
}
