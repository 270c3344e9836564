package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string `yaml:"env" env:"ENV" env-default:"local"`
	OwnerHeader string `yaml:"owner_header" env-default:"X-Owner-ID"`
	HTTPServer  `yaml:"http_server"`
	Database    Database   `yaml:"database"`
	Kafka       Kafka      `yaml:"kafka"`
	Redis       Redis      `yaml:"redis"`
	Renditions  Renditions `yaml:"renditions"`
	Upload      Upload     `yaml:"upload"`
	Quota       Quota      `yaml:"quota"`
	Mirror      Mirror     `yaml:"mirror"`
	PublicAPI   PublicAPI  `yaml:"public_api"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8082"`
	Timeout     time.Duration `yaml:"timeout" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Database struct {
	// Driver is "postgres" or "memory".
	Driver   string `yaml:"driver" env:"DB_DRIVER" env-default:"postgres"`
	Host     string `yaml:"host" env:"DB_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"DB_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"DB_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"DB_NAME" env-default:"photofolio"`
	SSLMode  string `yaml:"sslmode" env:"DB_SSLMODE" env-default:"disable"`
}

type Kafka struct {
	Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED"`
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `yaml:"topic" env-default:"photo-events"`
	GroupID string   `yaml:"group_id" env-default:"photofolio-events-tail"`
}

type Redis struct {
	Enabled  bool          `yaml:"enabled" env:"REDIS_ENABLED"`
	Addr     string        `yaml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" env-default:"0"`
	UsageTTL time.Duration `yaml:"usage_ttl" env-default:"5m"`
}

type Renditions struct {
	Root      string `yaml:"root" env:"RENDITIONS_ROOT" env-default:"./photos"`
	URLPrefix string `yaml:"url_prefix" env-default:"/photos"`
	// Format is "webp" or "jpeg".
	Format  string `yaml:"format" env-default:"webp"`
	Workers int    `yaml:"workers" env-default:"2"`
}

type Upload struct {
	MaxBytes     int64    `yaml:"max_bytes" env-default:"10485760"`
	AllowedTypes []string `yaml:"allowed_types" env-default:"image/jpeg,image/png,image/webp"`
}

type Quota struct {
	LimitBytes int64 `yaml:"limit_bytes" env-default:"5368709120"`
}

type Mirror struct {
	Enabled   bool   `yaml:"enabled" env:"MIRROR_ENABLED"`
	Endpoint  string `yaml:"endpoint" env:"MIRROR_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `yaml:"access_key" env:"MIRROR_ACCESS_KEY"`
	SecretKey string `yaml:"secret_key" env:"MIRROR_SECRET_KEY"`
	Bucket    string `yaml:"bucket" env-default:"renditions"`
	UseSSL    bool   `yaml:"use_ssl"`
}

type PublicAPI struct {
	RatePerSecond float64 `yaml:"rate_per_second" env-default:"20"`
	Burst         int     `yaml:"burst" env-default:"40"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	return MustLoadPath(configPath)
}

func MustLoadPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return &cfg
}
