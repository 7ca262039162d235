package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound)
// and fall back to Default.
var ErrConfigNotFound = errors.New("config file not found")

const ConfigFileName = "obrasgov.yaml"

type Config struct {
	DatabasePath string `yaml:"database_path"`
	DataDir      string `yaml:"data_dir"`
	ListenAddr   string `yaml:"listen_addr"`
}

func Default() *Config {
	return &Config{
		DatabasePath: "projeto_investimento.db",
		DataDir:      "data",
		ListenAddr:   ":7070",
	}
}

func Load(dir string) (*Config, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv lets environment variables (usually from a .env file) override
// whatever the yaml said.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("OBRASGOV_DB"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("OBRASGOV_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("OBRASGOV_ADDR"); v != "" {
		c.ListenAddr = v
	}
}
