package configs

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port    string
	AppEnv  string
	Railway bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	CatalogPath       string
	MinRespondents    int
	ReportConcurrency int
	RequestTimeout    time.Duration
	CorsOrigins       []string
	Timezone          string
}

// =======================
// ENV LOADER
// =======================

// LoadEnv loads .env outside Railway. It returns a short note for the startup log.
func LoadEnv() string {
	if os.Getenv("RAILWAY_ENVIRONMENT") != "" {
		return "🚀 Running in Railway, using system ENV"
	}
	if err := godotenv.Load(); err != nil {
		return "⚠️ No .env file found, using system ENV"
	}
	return "✅ .env file loaded"
}

// Load reads the configuration from the environment, applying defaults.
func Load() Config {
	return Config{
		Port:    GetEnv("PORT", "4001"),
		AppEnv:  GetEnv("APP_ENV", "development"),
		Railway: GetEnv("RAILWAY_ENVIRONMENT") != "",

		DBHost:     GetEnv("DB_HOST", "localhost"),
		DBPort:     GetEnv("DB_PORT", "5432"),
		DBUser:     GetEnv("DB_USER", "postgres"),
		DBPassword: GetEnv("DB_PASSWORD"),
		DBName:     GetEnv("DB_NAME", "COSMO_RLT"),
		DBSSLMode:  GetEnv("DB_SSLMODE", "disable"),

		CatalogPath:       GetEnv("CATALOG_PATH"),
		MinRespondents:    GetEnvInt("MIN_RESPONDENTS", 25),
		ReportConcurrency: GetEnvInt("REPORT_CONCURRENCY", 8),
		RequestTimeout:    GetEnvDuration("REQUEST_TIMEOUT", 30*time.Second),
		CorsOrigins:       splitList(GetEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),
		Timezone:          GetEnv("TIMEZONE", "America/Bogota"),
	}
}

// Validate reports missing settings that would make the server unusable.
func (c Config) Validate() error {
	var errs []error
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is empty"))
	}
	if c.MinRespondents < 0 {
		errs = append(errs, fmt.Errorf("MIN_RESPONDENTS must be >= 0, got %d", c.MinRespondents))
	}
	if c.ReportConcurrency < 1 {
		errs = append(errs, fmt.Errorf("REPORT_CONCURRENCY must be >= 1, got %d", c.ReportConcurrency))
	}
	return errors.Join(errs...)
}

// DSN builds the postgres URL, including a server-side statement timeout.
// Credentials and names are escaped, so any password is accepted.
func (c Config) DSN() string {
	q := url.Values{}
	q.Set("sslmode", c.DBSSLMode)
	q.Set("application_name", "cosmo_stats")
	q.Set("options", "-c statement_timeout=15000")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: strings.ReplaceAll(q.Encode(), "+", "%20"),
	}
	return u.String()
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	log           *zap.Logger
}

func NewGormLogger(log *zap.Logger) gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
		log:           log.Named("gorm").WithOptions(zap.AddCallerSkip(3)),
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("file", utils.FileWithLineNum()),
		zap.Duration("elapsed", elapsed),
		zap.Int64("rows", rows),
		zap.String("sql", sql),
	}

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		l.log.Error("query failed", append(fields, zap.Error(err))...)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.log.Warn("slow query", fields...)
	case l.LogLevel >= gormLogger.Info:
		l.log.Debug("query", fields...)
	}
}
