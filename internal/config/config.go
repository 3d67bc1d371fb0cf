package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Sync  SyncConfig  `yaml:"sync" mapstructure:"sync"`
	Store StoreConfig `yaml:"store" mapstructure:"store"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// SyncConfig configures the Community Dragon sync pipeline.
type SyncConfig struct {
	Set                      string `yaml:"set" mapstructure:"set"`
	CDragonBase              string `yaml:"cdragon_base" mapstructure:"cdragon_base"`
	ComprehensiveURL         string `yaml:"comprehensive_url" mapstructure:"comprehensive_url"`
	ItemsURL                 string `yaml:"items_url" mapstructure:"items_url"`
	TraitsURL                string `yaml:"traits_url" mapstructure:"traits_url"`
	OutputDir                string `yaml:"output_dir" mapstructure:"output_dir"`
	TablesPath               string `yaml:"tables_path" mapstructure:"tables_path"`
	ComprehensiveTimeoutSecs int    `yaml:"comprehensive_timeout_secs" mapstructure:"comprehensive_timeout_secs"`
	FeedTimeoutSecs          int    `yaml:"feed_timeout_secs" mapstructure:"feed_timeout_secs"`
	MaxRetries               int    `yaml:"max_retries" mapstructure:"max_retries"`
}

// SetPrefix returns the item-id namespace prefix for the configured set,
// e.g. "TFT16_" for set 16.
func (s SyncConfig) SetPrefix() string {
	return fmt.Sprintf("TFT%s_", s.Set)
}

// SetToken returns the trait-set membership token for the configured set,
// e.g. "TFTSet16" for set 16.
func (s SyncConfig) SetToken() string {
	return fmt.Sprintf("TFTSet%s", s.Set)
}

// StoreConfig configures the local sync-log database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

const cdragonBase = "https://raw.communitydragon.org/latest/plugins/rcp-be-lol-game-data/global/default"

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("TFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sync.set", "16")
	v.SetDefault("sync.cdragon_base", cdragonBase)
	v.SetDefault("sync.comprehensive_url", "https://raw.communitydragon.org/latest/cdragon/tft/en_us.json")
	v.SetDefault("sync.items_url", cdragonBase+"/v1/tftitems.json")
	v.SetDefault("sync.traits_url", cdragonBase+"/v1/tfttraits.json")
	v.SetDefault("sync.output_dir", "data/tft")
	v.SetDefault("sync.comprehensive_timeout_secs", 120)
	v.SetDefault("sync.feed_timeout_secs", 60)
	v.SetDefault("sync.max_retries", 1)
	v.SetDefault("store.path", "data/tft-cli.db")
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
