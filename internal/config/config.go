// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"routineTracker/internal/theme"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath - путь к конфигу, если не задан флагом или ROUTINE_CONFIG
const DefaultPath = "config.yml"

const EnvPath = "ROUTINE_CONFIG"

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Theme   ThemeConfig   `yaml:"theme"`
	HTTP    HTTPConfig    `yaml:"http"`
}

type ServerConfig struct {
	Port            string        `yaml:"port"`
	Host            string        `yaml:"host"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Development bool `yaml:"development"`
}

type ThemeConfig struct {
	Preference string `yaml:"preference"` // "light", "dark" или "system"
	SystemDark bool   `yaml:"system_dark"` // что считать системной темой на сервере
}

type HTTPConfig struct {
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RateLimit      int           `yaml:"rate_limit"` // запросов в минуту с одного IP
	AllowedOrigins []string      `yaml:"allowed_origins"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Host:            "",
			ShutdownTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Development: true,
		},
		Theme: ThemeConfig{
			Preference: string(theme.DefaultPreference),
			SystemDark: true,
		},
		HTTP: HTTPConfig{
			RequestTimeout: 30 * time.Second,
			RateLimit:      100,
			AllowedOrigins: []string{"*"},
		},
	}
}

// Path выбирает путь: явный аргумент, затем переменная окружения, затем DefaultPath
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env
	}
	return DefaultPath
}

// Load читает YAML поверх значений по умолчанию.
// Отсутствующий файл по умолчанию не считается ошибкой.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	// пустой файл или только комментарии - переопределений нет
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("проверка %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("server.port не задан")
	}
	if _, err := theme.ParsePreference(c.Theme.Preference); err != nil {
		return fmt.Errorf("theme.preference: %w", err)
	}
	if c.HTTP.RateLimit <= 0 {
		return fmt.Errorf("http.rate_limit должен быть больше 0, получено %d", c.HTTP.RateLimit)
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("http.request_timeout должен быть больше 0, получено %s", c.HTTP.RequestTimeout)
	}
	return nil
}

// ThemePreference возвращает разобранное предпочтение, ошибку отсекает Validate
func (c *Config) ThemePreference() theme.Preference {
	pref, err := theme.ParsePreference(c.Theme.Preference)
	if err != nil {
		return theme.DefaultPreference
	}
	return pref
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
