package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable the service reads.
const EnvPrefix = "VOLUMETRICO"

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Validation ValidationConfig
	Storage    StorageConfig
	Metrics    MetricsConfig
	CORS       CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port" validate:"required"`
	Environment     string        `mapstructure:"environment" validate:"oneof=development production test"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

// ValidationConfig holds the defaults applied to every validation pass.
type ValidationConfig struct {
	CheckFileName  bool  `mapstructure:"check_file_name"`
	StrictTopLevel bool  `mapstructure:"strict_top_level"`
	MaxReportBytes int64 `mapstructure:"max_report_bytes" validate:"gt=0"`
}

// StorageConfig holds the S3 bucket reports can be validated from.
// An empty bucket disables object validation.
type StorageConfig struct {
	Region       string `mapstructure:"region" validate:"required_with=Bucket"`
	Bucket       string `mapstructure:"bucket"`
	Endpoint     string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKey    string `mapstructure:"access_key" validate:"required_with=SecretKey"`
	SecretKey    string `mapstructure:"secret_key" validate:"required_with=AccessKey"`
	UsePathStyle bool   `mapstructure:"use_path_style"`
	Prefix       string `mapstructure:"prefix"`
}

// Enabled reports whether a bucket is configured.
func (s *StorageConfig) Enabled() bool {
	return s.Bucket != ""
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,required"`
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are skipped; variables already set are not overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// Load reads configuration from environment variables with the VOLUMETRICO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.max_upload_bytes", 20<<20)

	// Validation defaults
	v.SetDefault("validation.check_file_name", true)
	v.SetDefault("validation.strict_top_level", true)
	v.SetDefault("validation.max_report_bytes", 20<<20)

	// Storage defaults (disabled until a bucket is set)
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.endpoint", "")
	v.SetDefault("storage.use_path_style", false)
	v.SetDefault("storage.prefix", "")

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "VOLUMETRICO_SERVER_PORT",
		"server.environment":          "VOLUMETRICO_SERVER_ENVIRONMENT",
		"server.read_timeout":         "VOLUMETRICO_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "VOLUMETRICO_SERVER_WRITE_TIMEOUT",
		"server.shutdown_timeout":     "VOLUMETRICO_SERVER_SHUTDOWN_TIMEOUT",
		"server.max_upload_bytes":     "VOLUMETRICO_SERVER_MAX_UPLOAD_BYTES",
		"validation.check_file_name":  "VOLUMETRICO_VALIDATION_CHECK_FILE_NAME",
		"validation.strict_top_level": "VOLUMETRICO_VALIDATION_STRICT_TOP_LEVEL",
		"validation.max_report_bytes": "VOLUMETRICO_VALIDATION_MAX_REPORT_BYTES",
		"storage.region":              "VOLUMETRICO_STORAGE_REGION",
		"storage.bucket":              "VOLUMETRICO_STORAGE_BUCKET",
		"storage.endpoint":            "VOLUMETRICO_STORAGE_ENDPOINT",
		"storage.access_key":          "VOLUMETRICO_STORAGE_ACCESS_KEY",
		"storage.secret_key":          "VOLUMETRICO_STORAGE_SECRET_KEY",
		"storage.use_path_style":      "VOLUMETRICO_STORAGE_USE_PATH_STYLE",
		"storage.prefix":              "VOLUMETRICO_STORAGE_PREFIX",
		"metrics.enabled":             "VOLUMETRICO_METRICS_ENABLED",
		"metrics.path":                "VOLUMETRICO_METRICS_PATH",
		"cors.allowed_origins":        "VOLUMETRICO_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Container platforms set a PORT env var. Use it if VOLUMETRICO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("VOLUMETRICO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		Environment:     v.GetString("server.environment"),
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		WriteTimeout:    v.GetDuration("server.write_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		MaxUploadBytes:  v.GetInt64("server.max_upload_bytes"),
	}
	cfg.Validation = ValidationConfig{
		CheckFileName:  v.GetBool("validation.check_file_name"),
		StrictTopLevel: v.GetBool("validation.strict_top_level"),
		MaxReportBytes: v.GetInt64("validation.max_report_bytes"),
	}
	cfg.Storage = StorageConfig{
		Region:       v.GetString("storage.region"),
		Bucket:       v.GetString("storage.bucket"),
		Endpoint:     v.GetString("storage.endpoint"),
		AccessKey:    v.GetString("storage.access_key"),
		SecretKey:    v.GetString("storage.secret_key"),
		UsePathStyle: v.GetBool("storage.use_path_style"),
		Prefix:       v.GetString("storage.prefix"),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags of every section.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
