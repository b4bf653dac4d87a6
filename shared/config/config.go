package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	StoragePg     = "pg"
	StorageMemory = "memory"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Storage        string        `yaml:"storage" validate:"required,oneof=pg memory"`
	MigrateOnStart bool          `yaml:"migrate_on_start"`
	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"`
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"required"`
	SecureHeaders  bool          `yaml:"secure_headers"` // adds HSTS, enable only behind https
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Log            Log           `yaml:"log"`
	RateLimit      RateLimit     `yaml:"rate_limit"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// RateLimit values are requests per second with a bucket of Burst. Zero disables a limiter.
type RateLimit struct {
	CreatePerUser float64 `yaml:"create_per_user"`
	AuthPerIP     float64 `yaml:"auth_per_ip"`
	Burst         float64 `yaml:"burst"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file: " + err.Error())
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics on any missing
// or invalid field.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := cfg.Validate(); err != nil {
		panic(err.Error())
	}
	return cfg
}

func (s *Config) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(s.Public); err != nil {
		return fmt.Errorf("invalid public config: %w", err)
	}
	if err := validate.Var(s.Private.JwtKey, "required"); err != nil {
		return fmt.Errorf("invalid private config: jwt_key: %w", err)
	}
	// pg credentials only matter when postgres is the backing store
	if s.Public.Storage == StoragePg {
		if err := validate.Struct(s.Private.Pg); err != nil {
			return fmt.Errorf("invalid private config: pg: %w", err)
		}
	}
	return nil
}
