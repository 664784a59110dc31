package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config/config.yaml"

// maxFrameInterval ограничивает интервал кадра сверху: кадр не должен перескакивать фазу.
const maxFrameInterval = 500 * time.Millisecond

// Config объединяет все аспекты настройки приложения.
type Config struct {
	HTTP      HTTPConfig     `yaml:"http"`
	Spin      SpinConfig     `yaml:"spin"`
	Timeouts  TimeoutConfig  `yaml:"timeouts"`
	Logging   LoggingConfig  `yaml:"logging"`
	Swagger   SwaggerConfig  `yaml:"swagger"`
	LoadTests LoadTestConfig `yaml:"load_tests"`
}

// HTTPConfig описывает HTTP-сервер.
type HTTPConfig struct {
	Port         string        `yaml:"port" env:"HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT"`
}

// SpinConfig описывает анимацию колеса и поток событий.
// Seed = 0 означает зерно от текущего времени.
type SpinConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval" env:"SPIN_FRAME_INTERVAL"`
	Seed          int64         `yaml:"seed" env:"SPIN_SEED"`
	EventBuffer   int           `yaml:"event_buffer" env:"SPIN_EVENT_BUFFER"`
}

// TimeoutConfig содержит таймауты разного уровня.
type TimeoutConfig struct {
	Operation time.Duration `yaml:"operation" env:"OPERATION_TIMEOUT"`
	Shutdown  time.Duration `yaml:"shutdown" env:"SHUTDOWN_TIMEOUT"`
}

// LoggingConfig описывает формат и место логов.
type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Output string `yaml:"output" env:"LOG_OUTPUT"`
}

// SwaggerConfig задаёт путь до OpenAPI-спецификации.
type SwaggerConfig struct {
	SpecPath string `yaml:"spec_path" env:"SWAGGER_SPEC_PATH"`
}

// LoadTestConfig хранит параметры нагрузочного тестирования.
type LoadTestConfig struct {
	ResultsPath string `yaml:"results_path" env:"LOAD_TEST_RESULTS"`
}

// Load загружает конфигурацию, отдавая предпочтение пути из CONFIG_PATH.
func Load() (Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := Config{}
	if err := readYAML(path, &cfg); err != nil {
		return Config{}, err
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env vars: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func readYAML(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file %s not found", path)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode config yaml: %w", err)
	}
	return nil
}

// Normalize заполняет незаданные поля значениями по умолчанию.
func (c *Config) Normalize() {
	c.HTTP.normalize()
	c.Spin.normalize()
	c.Timeouts.normalize()
	c.Logging.normalize()
	if c.Swagger.SpecPath == "" {
		c.Swagger.SpecPath = "openapi.yml"
	}
	if c.LoadTests.ResultsPath == "" {
		c.LoadTests.ResultsPath = "load/artifacts/results.bin"
	}
}

// Validate проверяет значения, которые нельзя исправить подстановкой по умолчанию.
func (c Config) Validate() error {
	if c.Spin.FrameInterval > maxFrameInterval {
		return fmt.Errorf("spin.frame_interval %s exceeds %s", c.Spin.FrameInterval, maxFrameInterval)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q: must be debug, info, warn or error", c.Logging.Level)
	}
	return nil
}

func (h *HTTPConfig) normalize() {
	if h.Port == "" {
		h.Port = "8080"
	}
	if h.ReadTimeout <= 0 {
		h.ReadTimeout = 5 * time.Second
	}
	// 0 отключает таймаут записи: поток событий держит соединение открытым.
	if h.WriteTimeout < 0 {
		h.WriteTimeout = 0
	}
	if h.IdleTimeout <= 0 {
		h.IdleTimeout = 5 * time.Minute
	}
}

func (s *SpinConfig) normalize() {
	if s.FrameInterval <= 0 {
		s.FrameInterval = time.Second / 60
	}
	if s.EventBuffer <= 0 {
		s.EventBuffer = 256
	}
}

func (t *TimeoutConfig) normalize() {
	if t.Operation <= 0 {
		t.Operation = 5 * time.Second
	}
	if t.Shutdown <= 0 {
		t.Shutdown = 10 * time.Second
	}
}

func (l *LoggingConfig) normalize() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Output == "" {
		l.Output = "stdout"
	}
}
