package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config корневая структура конфигурации редактора.

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Render  RenderConfig  `yaml:"render"`
	Codec   CodecConfig   `yaml:"codec"`
}

type ServerConfig struct {
	RESTPort    int `yaml:"rest_port"`
	MetricsPort int `yaml:"metrics_port"`
}

type StorageConfig struct {
	DataPath string `yaml:"data_path"`
}

type RenderConfig struct {
	TilesetPath string `yaml:"tileset_path"`
	Scale       int    `yaml:"scale"`
}

type CodecConfig struct {
	TablesPath string `yaml:"tables_path"`
}

// GetRESTPort возвращает REST API порт с поддержкой fallback значений
func (s *ServerConfig) GetRESTPort() int {
	return getPortWithEnvFallback(s.RESTPort, "GOLF_REST_PORT", 8088)
}

// GetMetricsPort возвращает Prometheus метрики порт с поддержкой fallback значений
func (s *ServerConfig) GetMetricsPort() int {
	return getPortWithEnvFallback(s.MetricsPort, "GOLF_METRICS_PORT", 2112)
}

// GetDataPath возвращает каталог данных с приоритетом: config -> env -> default
func (s *StorageConfig) GetDataPath() string {
	if s.DataPath != "" {
		return s.DataPath
	}
	if env := os.Getenv("GOLF_DATA_PATH"); env != "" {
		return env
	}
	return "data"
}

// GetTilesetPath возвращает путь к CHR-тайлсету
func (r *RenderConfig) GetTilesetPath() string {
	if r.TilesetPath != "" {
		return r.TilesetPath
	}
	if env := os.Getenv("GOLF_TILESET"); env != "" {
		return env
	}
	return "data/chr-ram.bin"
}

// GetScale возвращает масштаб рендера
func (r *RenderConfig) GetScale() int {
	if r.Scale > 0 {
		return r.Scale
	}
	if env := os.Getenv("GOLF_RENDER_SCALE"); env != "" {
		if scale, err := strconv.Atoi(env); err == nil && scale > 0 {
			return scale
		}
	}
	return 2
}

// GetTablesPath возвращает путь к таблицам сжатия
func (c *CodecConfig) GetTablesPath() string {
	if c.TablesPath != "" {
		return c.TablesPath
	}
	if env := os.Getenv("GOLF_TABLES"); env != "" {
		return env
	}
	return "data/tables/compression_tables.json"
}

// getPortWithEnvFallback возвращает порт с приоритетом: config -> env -> default
func getPortWithEnvFallback(configPort int, envVar string, defaultPort int) int {
	if configPort > 0 {
		return configPort
	}
	if envVal := os.Getenv(envVar); envVal != "" {
		if port, err := strconv.Atoi(envVal); err == nil && port > 0 {
			return port
		}
	}
	return defaultPort
}

// Load читает YAML файл конфигурации.
// Если path == "", пытается прочитать из ENV GOLF_CONFIG или возвращает nil, nil.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("GOLF_CONFIG")
		if path == "" {
			return nil, nil // конфиг не задан — использовать дефолты
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
