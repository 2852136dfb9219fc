// Package config lê as variáveis de ambiente (e o .env, se existir) para
// uma struct única que é passada aos construtores na inicialização.
//
// NEON_DATABASE_URL e JWT_SECRET não são exigidos aqui: sem eles o serviço
// sobe e cada login cai no erro 500 genérico.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	DatabaseURL    string `koanf:"neon_database_url"`
	JWTSecret      string `koanf:"jwt_secret"`
	DBDriver       string `koanf:"db_driver" validate:"oneof=pgx postgres"`
	Port           string `koanf:"port" validate:"numeric"`
	LogLevel       string `koanf:"log_level" validate:"oneof=debug info warn error"`
	LogFormat      string `koanf:"log_format" validate:"oneof=json console"`
	AllowedOrigins string `koanf:"allowed_origins"`
	AMQPURL        string `koanf:"amqp_url" validate:"omitempty,url"`
}

var knownKeys = map[string]bool{
	"neon_database_url": true,
	"jwt_secret":        true,
	"db_driver":         true,
	"port":              true,
	"log_level":         true,
	"log_format":        true,
	"allowed_origins":   true,
	"amqp_url":          true,
}

// Load carrega .env (opcional), lê o ambiente, aplica defaults e valida
// os campos opcionais.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		key := strings.ToLower(s)
		if !knownKeys[key] {
			return ""
		}
		return key
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.DBDriver = firstNonEmpty(c.DBDriver, "pgx")
	c.Port = firstNonEmpty(c.Port, "8080")
	c.LogLevel = strings.ToLower(firstNonEmpty(c.LogLevel, "info"))
	c.LogFormat = strings.ToLower(firstNonEmpty(c.LogFormat, "json"))
	c.AllowedOrigins = firstNonEmpty(c.AllowedOrigins, "*")
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Origins quebra ALLOWED_ORIGINS (CSV) para o CORS.
func (c *Config) Origins() []string {
	var out []string
	for _, v := range strings.Split(c.AllowedOrigins, ",") {
		if t := strings.TrimSpace(v); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
