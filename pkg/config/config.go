package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the complete application configuration
type Config struct {
	Server  ServerConfig  `yaml:"server" json:"server"`
	Upload  UploadConfig  `yaml:"upload" json:"upload"`
	GRPC    GRPCConfig    `yaml:"grpc" json:"grpc"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Address string        `yaml:"address" json:"address"`
	Port    int           `yaml:"port" json:"port"`
	Timeout time.Duration `yaml:"timeout" json:"timeout"`
}

// UploadConfig holds upload session configuration
type UploadConfig struct {
	TempDir             string        `yaml:"tempDir" json:"tempDir"`
	DefaultMaxFileSize  int64         `yaml:"defaultMaxFileSize" json:"defaultMaxFileSize"`
	DefaultChunkTimeout time.Duration `yaml:"defaultChunkTimeout" json:"defaultChunkTimeout"`
	MaxSessionsPerOwner int           `yaml:"maxSessionsPerOwner" json:"maxSessionsPerOwner"`
	Tokens              []TokenSeed   `yaml:"tokens" json:"tokens"`
}

// TokenSeed pre-registers a join token for an owner at startup.
// Tokens are normally issued at runtime; seeds exist for static deployments.
type TokenSeed struct {
	Token string `yaml:"token" json:"token"`
	Owner string `yaml:"owner" json:"owner"`
}

// GRPCConfig holds gRPC-specific configuration
type GRPCConfig struct {
	MaxRecvMsgSize    int32         `yaml:"maxRecvMsgSize" json:"maxRecvMsgSize"`
	MaxSendMsgSize    int32         `yaml:"maxSendMsgSize" json:"maxSendMsgSize"`
	MaxHeaderListSize int32         `yaml:"maxHeaderListSize" json:"maxHeaderListSize"`
	KeepAliveTime     time.Duration `yaml:"keepAliveTime" json:"keepAliveTime"`
	KeepAliveTimeout  time.Duration `yaml:"keepAliveTimeout" json:"keepAliveTimeout"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Output string `yaml:"output" json:"output"`
}

// DefaultConfig Default configuration values
var DefaultConfig = Config{
	Server: ServerConfig{
		Address: "0.0.0.0",
		Port:    50061,
		Timeout: 30 * time.Second,
	},
	Upload: UploadConfig{
		TempDir:             "/var/lib/uploadd/tmp",
		DefaultMaxFileSize:  100 * 1024 * 1024, // 100MB
		DefaultChunkTimeout: 30 * time.Second,
		MaxSessionsPerOwner: 8,
	},
	GRPC: GRPCConfig{
		MaxRecvMsgSize:    512 * 1024,      // 512KB
		MaxSendMsgSize:    4 * 1024 * 1024, // 4MB
		MaxHeaderListSize: 1 * 1024 * 1024, // 1MB
		KeepAliveTime:     30 * time.Second,
		KeepAliveTimeout:  5 * time.Second,
	},
	Logging: LoggingConfig{
		Level:  "INFO",
		Output: "stdout",
	},
}

// LoadConfig loads configuration from multiple sources in order of precedence:
// 1. Environment variables (highest precedence)
// 2. Configuration file
// 3. Default values (lowest precedence)
func LoadConfig() (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	loadFromEnv(&config)

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(config *Config) (string, error) {
	configPaths := []string{
		os.Getenv("UPLOADD_CONFIG_PATH"), // Custom path from environment
		"./config.yaml",                  // Current directory
		"./config/config.yaml",           // Config subdirectory
		"/etc/uploadd/config.yaml",       // System-wide
		"/opt/uploadd/config.yaml",       // Installation directory
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(config *Config) {
	if val := os.Getenv("UPLOADD_SERVER_ADDRESS"); val != "" {
		config.Server.Address = val
	}
	if val := os.Getenv("UPLOADD_SERVER_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			config.Server.Port = port
		}
	}
	if val := os.Getenv("UPLOADD_SERVER_TIMEOUT"); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil {
			config.Server.Timeout = timeout
		}
	}

	if val := os.Getenv("UPLOADD_TEMP_DIR"); val != "" {
		config.Upload.TempDir = val
	}
	if val := os.Getenv("UPLOADD_MAX_FILE_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 64); err == nil {
			config.Upload.DefaultMaxFileSize = size
		}
	}
	if val := os.Getenv("UPLOADD_CHUNK_TIMEOUT"); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil {
			config.Upload.DefaultChunkTimeout = timeout
		}
	}
	if val := os.Getenv("UPLOADD_MAX_SESSIONS_PER_OWNER"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			config.Upload.MaxSessionsPerOwner = n
		}
	}

	if val := os.Getenv("UPLOADD_GRPC_MAX_RECV_MSG_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 32); err == nil {
			config.GRPC.MaxRecvMsgSize = int32(size)
		}
	}
	if val := os.Getenv("UPLOADD_GRPC_MAX_SEND_MSG_SIZE"); val != "" {
		if size, err := strconv.ParseInt(val, 10, 32); err == nil {
			config.GRPC.MaxSendMsgSize = int32(size)
		}
	}
	if val := os.Getenv("UPLOADD_GRPC_KEEPALIVE_TIME"); val != "" {
		if keepAlive, err := time.ParseDuration(val); err == nil {
			config.GRPC.KeepAliveTime = keepAlive
		}
	}
	if val := os.Getenv("UPLOADD_GRPC_KEEPALIVE_TIMEOUT"); val != "" {
		if timeout, err := time.ParseDuration(val); err == nil {
			config.GRPC.KeepAliveTimeout = timeout
		}
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
	if val := os.Getenv("LOG_OUTPUT"); val != "" {
		config.Logging.Output = val
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Upload.DefaultMaxFileSize <= 0 {
		return fmt.Errorf("invalid default max file size: %d", c.Upload.DefaultMaxFileSize)
	}

	if c.Upload.DefaultChunkTimeout <= 0 {
		return fmt.Errorf("invalid default chunk timeout: %s", c.Upload.DefaultChunkTimeout)
	}

	if c.Upload.MaxSessionsPerOwner < 1 {
		return fmt.Errorf("invalid max sessions per owner: %d", c.Upload.MaxSessionsPerOwner)
	}

	if !filepath.IsAbs(c.Upload.TempDir) {
		return fmt.Errorf("temp directory must be absolute path: %s", c.Upload.TempDir)
	}

	for _, seed := range c.Upload.Tokens {
		if seed.Token == "" || seed.Owner == "" {
			return fmt.Errorf("token seed requires both token and owner")
		}
	}

	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) SaveToFile(path string) error {
	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a specific configuration file
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// GenerateDefaultConfig creates a default configuration file
func GenerateDefaultConfig(path string) error {
	config := DefaultConfig
	return config.SaveToFile(path)
}
