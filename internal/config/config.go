package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Upload struct {
		TempDir string `yaml:"temp_dir"` // scratch root for uploaded models
		MaxSize int64  `yaml:"max_size"` // max upload size in bytes
	} `yaml:"upload"`

	Kernel struct {
		Command        string   `yaml:"command"` // geometry kernel executable
		Args           []string `yaml:"args"`    // leading args, file path is appended
		TimeoutSeconds int      `yaml:"timeout_seconds"`
	} `yaml:"kernel"`
}

var AppConfig *Config

// LoadConfig initializes AppConfig once at process start.
// A YAML file is used when present; environment variables override it.
func LoadConfig() {
	cfg := defaults()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(cfg)

	AppConfig = cfg
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 10000
	cfg.Server.Env = "production"
	cfg.Upload.TempDir = os.TempDir()
	cfg.Upload.MaxSize = 50 * 1024 * 1024 // 50MB, STEP assemblies get large
	cfg.Kernel.Command = "step-report"
	cfg.Kernel.TimeoutSeconds = 60
	return cfg
}

func applyEnvOverrides(cfg *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("SERVER_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.Server.Port = port
		}
	}
	if env := os.Getenv("SERVER_ENV"); env != "" {
		cfg.Server.Env = env
	}
	if dir := os.Getenv("UPLOAD_TEMP_DIR"); dir != "" {
		cfg.Upload.TempDir = dir
	}
	if cmd := os.Getenv("KERNEL_COMMAND"); cmd != "" {
		cfg.Kernel.Command = cmd
	}
	if timeoutStr := os.Getenv("KERNEL_TIMEOUT"); timeoutStr != "" {
		if timeout, err := strconv.Atoi(timeoutStr); err == nil {
			cfg.Kernel.TimeoutSeconds = timeout
		}
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
