package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "CREATORHUB"

type Config struct {
	Debug           bool          `mapstructure:"debug"`
	ServerAddr      string        `mapstructure:"server_addr"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// DemoSenderId is the user every chat message is attributed to.
	DemoSenderId int `mapstructure:"demo_sender_id"`
	// DemoUserId is the user the wallet endpoints report on.
	DemoUserId int `mapstructure:"demo_user_id"`
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.ServerAddr) == "" {
		return fmt.Errorf("server address cannot be empty")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	if c.DemoSenderId <= 0 {
		return fmt.Errorf("demo sender id must be positive")
	}
	if c.DemoUserId <= 0 {
		return fmt.Errorf("demo user id must be positive")
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("server_addr", "localhost:8000")
	v.SetDefault("allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("demo_sender_id", 1)
	v.SetDefault("demo_user_id", 4)
}

// loadEnv loads .env files from envPath into the process environment.
// Variables that are already set win over the files.
func loadEnv(envPath string) error {
	if envPath == "" {
		return nil
	}

	for _, name := range []string{".env.local", ".env"} {
		file := filepath.Join(envPath, name)
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return fmt.Errorf("load %s: %w", file, err)
		}
	}

	return nil
}

// Load reads the configuration from, in increasing priority, defaults, an
// optional YAML file, .env files under envPath and CREATORHUB_* variables.
func Load(configFile, envPath string) (*Config, error) {
	if err := loadEnv(envPath); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}
