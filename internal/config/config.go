package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bryanfernandez-eng/nba-glass/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	LogLevel               logging.Level
	DatasetPath            string
	DatasetStrict          bool
	NameCacheMaxEntries    int
	ExportWorkers          int
	CORSAllowedOrigins     []string
	SwaggerEnabled         bool
	RateLimitEnabled       bool
	RateLimitRequests      int
	RateLimitWindow        time.Duration
	PprofEnabled           bool
	PprofAddr              string
	UptraceEnabled         bool
	UptraceDSN             string
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	datasetPath := strings.TrimSpace(getEnv("DATASET_PATH", "data/player_stats.csv"))
	datasetStrict, err := strconv.ParseBool(getEnv("DATASET_STRICT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DATASET_STRICT: %w", err)
	}
	nameCacheMaxEntries, err := getEnvAsInt("NAME_CACHE_MAX_ENTRIES", 10000)
	if err != nil {
		return Config{}, fmt.Errorf("parse NAME_CACHE_MAX_ENTRIES: %w", err)
	}
	if nameCacheMaxEntries < 0 {
		return Config{}, fmt.Errorf("NAME_CACHE_MAX_ENTRIES must be >= 0")
	}
	exportWorkers, err := getEnvAsInt("EXPORT_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse EXPORT_WORKERS: %w", err)
	}
	if exportWorkers <= 0 {
		return Config{}, fmt.Errorf("EXPORT_WORKERS must be > 0")
	}

	rateLimitEnabled, err := strconv.ParseBool(getEnv("RATE_LIMIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_ENABLED: %w", err)
	}
	rateLimitRequests, err := getEnvAsInt("RATE_LIMIT_REQUESTS", 120)
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_REQUESTS: %w", err)
	}
	if rateLimitRequests <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_REQUESTS must be > 0")
	}
	rateLimitWindow, err := time.ParseDuration(getEnv("RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATE_LIMIT_WINDOW: %w", err)
	}
	if rateLimitWindow <= 0 {
		return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be > 0")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "nba-glass-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		DatasetPath:            datasetPath,
		DatasetStrict:          datasetStrict,
		NameCacheMaxEntries:    nameCacheMaxEntries,
		ExportWorkers:          exportWorkers,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		SwaggerEnabled:         swaggerEnabled,
		RateLimitEnabled:       rateLimitEnabled,
		RateLimitRequests:      rateLimitRequests,
		RateLimitWindow:        rateLimitWindow,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              pprofAddr,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.DatasetPath == "" {
		return Config{}, fmt.Errorf("DATASET_PATH cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
