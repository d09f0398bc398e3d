// Package config loads application configuration and bootstraps logging.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Workbook WorkbookConfig `yaml:"workbook" mapstructure:"workbook"`
	Podcast  PodcastConfig  `yaml:"podcast" mapstructure:"podcast"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// WorkbookConfig locates the source workbook and its sheets.
type WorkbookConfig struct {
	Path          string `yaml:"path" mapstructure:"path"`
	FunnelSheet   string `yaml:"funnel_sheet" mapstructure:"funnel_sheet"`
	LifetimeSheet string `yaml:"lifetime_sheet" mapstructure:"lifetime_sheet"`
	MonthlySheet  string `yaml:"monthly_sheet" mapstructure:"monthly_sheet"`
	PodcastSheet  string `yaml:"podcast_sheet" mapstructure:"podcast_sheet"`
	CampaignSheet string `yaml:"campaign_sheet" mapstructure:"campaign_sheet"`
}

// PodcastConfig holds podcast-channel pricing.
type PodcastConfig struct {
	// UnitPrice is the fixed monthly price per active podcast subscriber;
	// the sheet records no per-row amount.
	UnitPrice float64 `yaml:"unit_price" mapstructure:"unit_price"`
}

// OutputConfig holds output file paths.
type OutputConfig struct {
	HTML   string `yaml:"html" mapstructure:"html"`
	Report string `yaml:"report" mapstructure:"report"`
}

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("GROWTH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("workbook.path", "NovaSignals-Growth-Funnel-Demo.xlsx")
	v.SetDefault("workbook.funnel_sheet", "COC")
	v.SetDefault("workbook.lifetime_sheet", "All time class enrllments")
	v.SetDefault("workbook.monthly_sheet", "payments(Monthly)")
	v.SetDefault("workbook.podcast_sheet", "PODCAST LEADS")
	v.SetDefault("workbook.campaign_sheet", "Premium Campaign")
	v.SetDefault("podcast.unit_price", 999.0)
	v.SetDefault("output.html", "growth_dashboard.html")
	v.SetDefault("output.report", "growth_report.txt")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
