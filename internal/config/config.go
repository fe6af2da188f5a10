package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the SoarTV API configuration.
type Config struct {
	HTTP           HTTPConfig           `yaml:"http"`
	Database       DatabaseConfig       `yaml:"database"`
	Objects        ObjectsConfig        `yaml:"objects"`
	Fallback       FallbackConfig       `yaml:"fallback"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	Auth           AuthConfig           `yaml:"auth"`
	Logging        LoggingConfig        `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"` // empty = open API
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int      `yaml:"port"`
	ReadTimeoutSec  int      `yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `yaml:"write_timeout_sec"`
	ShutdownSec     int      `yaml:"shutdown_timeout_sec"`
	StaticDir       string   `yaml:"static_dir"` // empty = no SPA serving
	CORSOrigins     []string `yaml:"cors_origins"`
	RateLimitRPM    int      `yaml:"rate_limit_rpm"` // per client IP, 0 = unlimited
}

// DatabaseConfig holds document store connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// ObjectsConfig holds object storage settings. An empty bucket disables uploads.
type ObjectsConfig struct {
	Bucket          string `yaml:"bucket"`
	CredentialsFile string `yaml:"credentials_file"`
	Endpoint        string `yaml:"endpoint"` // emulator endpoint, skips auth
	UploadPrefix    string `yaml:"upload_prefix"`
	UploadTTLSec    int    `yaml:"upload_ttl_sec"`
}

// FallbackConfig holds settings of the bounded store guard.
type FallbackConfig struct {
	TimeoutMs        int    `yaml:"timeout_ms"`
	FailureThreshold uint32 `yaml:"failure_threshold"`
	OpenTimeoutSec   int    `yaml:"open_timeout_sec"`
	ProjectsFile     string `yaml:"projects_file"`
}

// RecommendationConfig holds recommendation assembly settings.
type RecommendationConfig struct {
	RecentLimit           int `yaml:"recent_limit"`
	EnrichmentConcurrency int `yaml:"enrichment_concurrency"`
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 10
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Objects.UploadPrefix == "" {
		c.Objects.UploadPrefix = "uploads"
	}
	if c.Objects.UploadTTLSec <= 0 {
		c.Objects.UploadTTLSec = 900
	}
	if c.Fallback.TimeoutMs <= 0 {
		c.Fallback.TimeoutMs = 3000
	}
	if c.Fallback.FailureThreshold == 0 {
		c.Fallback.FailureThreshold = 5
	}
	if c.Fallback.OpenTimeoutSec <= 0 {
		c.Fallback.OpenTimeoutSec = 30
	}
	if c.Fallback.ProjectsFile == "" {
		c.Fallback.ProjectsFile = "data/projects.json"
	}
	if c.Recommendation.RecentLimit <= 0 {
		c.Recommendation.RecentLimit = 50
	}
	if c.Recommendation.EnrichmentConcurrency <= 0 {
		c.Recommendation.EnrichmentConcurrency = 8
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if c.HTTP.RateLimitRPM < 0 {
		return fmt.Errorf("http.rate_limit_rpm must not be negative, got %d", c.HTTP.RateLimitRPM)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Objects.Bucket == "" && (c.Objects.CredentialsFile != "" || c.Objects.Endpoint != "") {
		return fmt.Errorf("objects.bucket is required when credentials_file or endpoint is set")
	}
	if strings.Contains(c.Objects.UploadPrefix, "..") {
		return fmt.Errorf("objects.upload_prefix must not contain \"..\", got %q", c.Objects.UploadPrefix)
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
