package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Session struct {
		Store      string `yaml:"store"` // memory, postgres
		DSN        string `yaml:"dsn"`
		CookieName string `yaml:"cookie_name"`
		MaxAgeDays int    `yaml:"max_age_days"`
		Secure     bool   `yaml:"secure"`
	} `yaml:"session"`

	Redis struct {
		Addr          string `yaml:"addr"`
		Password      string `yaml:"password"`
		DB            int    `yaml:"db"`
		ReferenceTTLs int    `yaml:"reference_ttl_seconds"`
	} `yaml:"redis"`

	Storage struct {
		Type       string `yaml:"type"`      // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"` // For local storage
		BaseURL    string `yaml:"base_url"`
		Bucket     string `yaml:"bucket"`
		Region     string `yaml:"region"`
		AccessKey  string `yaml:"access_key"`
		SecretKey  string `yaml:"secret_key"`
		Endpoint   string `yaml:"endpoint"`
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`
		AllowedTypes []string `yaml:"allowed_types"`
		MaxImageSide int      `yaml:"max_image_side"`
		JPEGQuality  int      `yaml:"jpeg_quality"`
	} `yaml:"upload"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
}

var AppConfig *Config

// LoadConfig загружает конфиг в AppConfig и завершает процесс при ошибке
func LoadConfig() {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	AppConfig = cfg
}

// Load читает config.yaml, если API_URL не задан в окружении,
// иначе собирает конфиг из переменных окружения.
func Load() (*Config, error) {
	apiURL := firstEnv("API_URL", "NEXT_PUBLIC_API_URL")

	if apiURL == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}
		log.Printf("Loading config from %s", configPath)
		return LoadFile(configPath)
	}

	log.Println("Loading config from environment")

	var cfg Config
	cfg.API.BaseURL = apiURL
	cfg.API.TimeoutSeconds = envInt("API_TIMEOUT_SECONDS", 0)
	cfg.Server.Env = os.Getenv("SERVER_ENV")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port = envInt("SERVER_PORT", 0)

	cfg.Session.DSN = os.Getenv("SESSION_DATABASE_URL")
	if cfg.Session.DSN != "" {
		cfg.Session.Store = "postgres"
	}
	cfg.Session.Secure = os.Getenv("SESSION_COOKIE_SECURE") == "true"

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Redis.ReferenceTTLs = envInt("REDIS_REFERENCE_TTL", 0)

	cfg.Storage.Type = os.Getenv("STORAGE_TYPE")
	cfg.Storage.BasePath = os.Getenv("STORAGE_BASE_PATH")
	cfg.Storage.BaseURL = os.Getenv("STORAGE_BASE_URL")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// LoadFile разбирает YAML-файл конфигурации
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}

	cfg.applyDefaults()
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url is required")
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Env == "" {
		c.Server.Env = "development"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 15
	}
	c.API.BaseURL = strings.TrimRight(c.API.BaseURL, "/")
	if c.Session.Store == "" {
		c.Session.Store = "memory"
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "sid"
	}
	if c.Session.MaxAgeDays <= 0 {
		c.Session.MaxAgeDays = 30
	}
	if c.Redis.ReferenceTTLs <= 0 {
		c.Redis.ReferenceTTLs = 600
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Storage.BasePath == "" {
		c.Storage.BasePath = "./uploads"
	}
	if c.Storage.BaseURL == "" && c.Storage.Type == "local" {
		c.Storage.BaseURL = "/files"
	}
	if c.Upload.MaxSize <= 0 {
		c.Upload.MaxSize = 5 * 1024 * 1024 // 5MB
	}
	if len(c.Upload.AllowedTypes) == 0 {
		c.Upload.AllowedTypes = []string{"image/jpeg", "image/png", "image/webp"}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
