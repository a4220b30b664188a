package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config application configuration, loaded from a per-environment YAML file
// with environment variable overrides for secrets.
type Config struct {
	App struct {
		Env  string `yaml:"env"`
		Port int    `yaml:"port"`
	} `yaml:"app"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Redis struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	JWT struct {
		Secret            string `yaml:"secret"`
		AccessExpireMins  int    `yaml:"access_expire_mins"`
		RefreshExpireMins int    `yaml:"refresh_expire_mins"`
	} `yaml:"jwt"`

	History struct {
		// 한 페이지당 조회 개수 (무한 스크롤 단위)
		PageSize int `yaml:"page_size"`
	} `yaml:"history"`

	Diary struct {
		// 비공개 일기 본문 암호화 키 (16/24/32 bytes)
		ContentKey string `yaml:"content_key"`
	} `yaml:"diary"`

	CORS struct {
		AllowOrigins string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// Load reads the YAML config file and applies env overrides.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// 민감값은 환경변수가 우선
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideString(&cfg.JWT.Secret, "JWT_SECRET")
	overrideString(&cfg.Diary.ContentKey, "DIARY_CONTENT_KEY")
	overrideString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
	overrideInt(&cfg.App.Port, "APP_PORT")

	applyDefaults(cfg)

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("config: jwt secret is required")
	}
	if cfg.Diary.ContentKey == "" {
		return nil, fmt.Errorf("config: diary content key is required")
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port == 0 {
		cfg.App.Port = 8080
	}
	if cfg.History.PageSize == 0 {
		cfg.History.PageSize = 20
	}
	if cfg.JWT.AccessExpireMins == 0 {
		cfg.JWT.AccessExpireMins = 30
	}
	if cfg.JWT.RefreshExpireMins == 0 {
		cfg.JWT.RefreshExpireMins = 60 * 24 * 14
	}
	if cfg.Redis.PoolSize == 0 {
		cfg.Redis.PoolSize = 10
	}
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
