package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	StaffAccessCode    string   `mapstructure:"staff_access_code"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`

	mu sync.RWMutex
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Load reads the yaml config at path and applies environment overrides.
// The file is watched afterwards so the staff access code can be rotated
// without a restart.
func Load(path string) (*AppConfig, error) {
	vp := viper.New()
	vp.SetConfigFile(path)

	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("vp.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := vp.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("vp.Unmarshal -> %w", err)
	}

	applyEnvOverrides(conf)

	vp.OnConfigChange(func(e fsnotify.Event) {
		next := &AppConfig{}
		if err := vp.Unmarshal(next); err != nil {
			zap.L().Warn("ignoring config change", zap.String("file", e.Name), zap.Error(err))

			return
		}

		applyEnvOverrides(next)
		conf.API.SetStaffAccessCode(next.API.GetStaffAccessCode())
		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	vp.WatchConfig()

	return conf, nil
}

func applyEnvOverrides(conf *AppConfig) {
	if v := os.Getenv("STAFF_ACCESS_CODE"); v != "" {
		conf.API.StaffAccessCode = v
	}
	if v := os.Getenv("JWT_SIGNING_KEY"); v != "" {
		conf.API.JWTSigningKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		conf.API.Port = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		conf.Redis.Addr = v
	}
}

func (c *APIConfig) GetStaffAccessCode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.StaffAccessCode
}

func (c *APIConfig) SetStaffAccessCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.StaffAccessCode = code
}
