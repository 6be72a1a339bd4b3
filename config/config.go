package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const envPrefix = "ROOMBOOKING"

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Auth     AuthConfig     `yaml:"auth"`
	Booking  BookingConfig  `yaml:"booking"`
}

type HTTPConfig struct {
	Address    string `yaml:"address"`
	SwaggerDir string `yaml:"swagger_dir" split_words:"true"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"ssl_mode" split_words:"true"`
	AutoMigrate bool   `yaml:"auto_migrate" split_words:"true"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic" split_words:"true"`
	NotificationsTopic string   `yaml:"notifications_topic" split_words:"true"`
	GroupID            string   `yaml:"group_id" split_words:"true"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" envconfig:"JWT_SECRET"`
}

type BookingConfig struct {
	RoomCacheTTLSeconds int `yaml:"room_cache_ttl_seconds" envconfig:"ROOM_CACHE_TTL_SECONDS"`
	RoomLockTTLSeconds  int `yaml:"room_lock_ttl_seconds" envconfig:"ROOM_LOCK_TTL_SECONDS"`
}

// RoomCacheTTL defaults to one minute. Cached rooms always expire.
func (b BookingConfig) RoomCacheTTL() time.Duration {
	if b.RoomCacheTTLSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(b.RoomCacheTTLSeconds) * time.Second
}

func (b BookingConfig) RoomLockTTL() time.Duration {
	if b.RoomLockTTLSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(b.RoomLockTTLSeconds) * time.Second
}

// LoadConfig reads the YAML file at path and then applies ROOMBOOKING_* environment overrides,
// e.g. ROOMBOOKING_AUTH_JWT_SECRET or ROOMBOOKING_DATABASE_PASSWORD.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply env overrides: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	return &cfg, nil
}
