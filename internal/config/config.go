// Package config loads and validates the genecli configuration file.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Cache    CacheConfig    `mapstructure:"cache"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Database DatabaseConfig `mapstructure:"database"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
}

type CacheConfig struct {
	// Path locates the single JSON document backing the gene cache. There is
	// no process-wide default path; callers always pass this explicitly.
	Path string `mapstructure:"path" validate:"required"`
}

type SourcesConfig struct {
	TimeoutSeconds int                `mapstructure:"timeout_seconds" validate:"gt=0"`
	GeneALaCart    SourceConfig       `mapstructure:"genealacart"`
	ClinicalTables SourceConfig       `mapstructure:"clinicaltables"`
	Entrez         EntrezSourceConfig `mapstructure:"entrez"`
}

// Timeout returns the fixed per-request timeout every adapter applies.
func (c SourcesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type SourceConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type EntrezSourceConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	Database        string            `mapstructure:"database"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime"`
}

type OutputsConfig struct {
	ReportDirectory string `mapstructure:"report_directory"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/genecli")
	}

	v.SetDefault("cache.path", filepath.Join("genes", "cache.json"))
	v.SetDefault("sources.timeout_seconds", 10)
	v.SetDefault("sources.genealacart.base_url", "https://genealacart.genecards.org")
	v.SetDefault("sources.clinicaltables.base_url", "https://clinicaltables.nlm.nih.gov")
	v.SetDefault("sources.entrez.base_url", "https://eutils.ncbi.nlm.nih.gov")
	v.SetDefault("sources.entrez.retry_attempts", 2)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "genecli")
	v.SetDefault("outputs.report_directory", "reports")

	// Bind database credentials to environment variables only (not from config file)
	if err := v.BindEnv("database.username", "GENECLI_DB_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind GENECLI_DB_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "GENECLI_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind GENECLI_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cfg.Validate > %w", err)
	}
	return &cfg, nil
}
