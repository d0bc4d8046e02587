package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of the service.
type Config struct {
	Env         string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Storage     StorageConfig
	Translation TranslationConfig
	NewsAPI     NewsAPIConfig
	Logging     LoggingConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
	Seed        SeedConfig
}

type ServerConfig struct {
	Port    string
	Host    string
	BaseURL string // base URL used to build RFC 7807 problem type URIs
}

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	MaxConns    int
	MinConns    int
	MaxIdleTime int
	AutoMigrate bool
}

// RedisConfig is optional; an empty URL disables rate limiting.
type RedisConfig struct {
	URL string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
	Issuer    string
}

// StorageConfig selects the media backend. Driver is "bunny" or "s3".
type StorageConfig struct {
	Driver  string
	Timeout time.Duration
	Bunny   BunnyConfig
	S3      S3Config
}

type BunnyConfig struct {
	StorageZone string
	AccessKey   string
	Hostname    string
	BaseURL     string
}

type S3Config struct {
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string // MinIO or another S3 compatible endpoint
	UseSSL          bool
	PublicBaseURL   string
}

type TranslationConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type NewsAPIConfig struct {
	APIKey   string
	BaseURL  string
	Country  string
	PageSize int
	Timeout  time.Duration
}

type LoggingConfig struct {
	Level string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig bounds requests per client on sensitive routes.
type RateLimitConfig struct {
	Auth      int
	Upload    int
	Translate int
	Window    time.Duration
}

type SeedConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("API_BASE_URL", "http://localhost:8080")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "renaspress")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 25)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_TIME", 300)
	v.SetDefault("DB_AUTO_MIGRATE", true)

	v.SetDefault("JWT_EXPIRES_IN", "7d")
	v.SetDefault("JWT_ISSUER", "renaspress")

	v.SetDefault("STORAGE_DRIVER", "bunny")
	v.SetDefault("STORAGE_TIMEOUT", "60s")
	v.SetDefault("S3_REGION", "us-east-1")
	v.SetDefault("S3_USE_SSL", true)

	v.SetDefault("GOOGLE_TRANSLATE_BASE_URL", "https://translation.googleapis.com/language/translate/v2")
	v.SetDefault("TRANSLATE_TIMEOUT", "15s")

	v.SetDefault("NEWS_API_BASE_URL", "https://newsapi.org/v2")
	v.SetDefault("NEWS_API_COUNTRY", "sa")
	v.SetDefault("NEWS_API_PAGE_SIZE", 50)
	v.SetDefault("NEWS_API_TIMEOUT", "20s")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	v.SetDefault("RATE_LIMIT_AUTH", 10)
	v.SetDefault("RATE_LIMIT_UPLOAD", 30)
	v.SetDefault("RATE_LIMIT_TRANSLATE", 30)
	v.SetDefault("RATE_LIMIT_WINDOW", "1m")

	v.SetDefault("ADMIN_NAME", "Administrator")
}

// Load reads the given dotenv files (default ".env", missing files are
// ignored) into the process environment and builds the Config from it.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("error reading env file %s: %w", f, err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	jwtExpiry, err := ParseExpiry(v.GetString("JWT_EXPIRES_IN"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_IN: %w", err)
	}

	config := &Config{
		Env: v.GetString("ENV"),
		Server: ServerConfig{
			Port:    v.GetString("PORT"),
			Host:    v.GetString("HOST"),
			BaseURL: v.GetString("API_BASE_URL"),
		},
		Database: DatabaseConfig{
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASS"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSL_MODE"),
			MaxConns:    v.GetInt("DB_MAX_CONNS"),
			MinConns:    v.GetInt("DB_MIN_CONNS"),
			MaxIdleTime: v.GetInt("DB_MAX_IDLE_TIME"),
			AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		JWT: JWTConfig{
			Secret:    v.GetString("JWT_SECRET"),
			ExpiresIn: jwtExpiry,
			Issuer:    v.GetString("JWT_ISSUER"),
		},
		Storage: StorageConfig{
			Driver:  strings.ToLower(v.GetString("STORAGE_DRIVER")),
			Timeout: v.GetDuration("STORAGE_TIMEOUT"),
			Bunny: BunnyConfig{
				StorageZone: v.GetString("BUNNY_STORAGE_ZONE_NAME"),
				AccessKey:   v.GetString("BUNNY_ACCESS_KEY"),
				Hostname:    v.GetString("BUNNY_HOSTNAME"),
				BaseURL:     v.GetString("BUNNY_BASE_URL"),
			},
			S3: S3Config{
				Region:          v.GetString("S3_REGION"),
				Bucket:          v.GetString("S3_BUCKET"),
				AccessKeyID:     v.GetString("S3_ACCESS_KEY_ID"),
				SecretAccessKey: v.GetString("S3_SECRET_ACCESS_KEY"),
				Endpoint:        v.GetString("S3_ENDPOINT"),
				UseSSL:          v.GetBool("S3_USE_SSL"),
				PublicBaseURL:   v.GetString("S3_PUBLIC_BASE_URL"),
			},
		},
		Translation: TranslationConfig{
			APIKey:  v.GetString("GOOGLE_TRANSLATE_API_KEY"),
			BaseURL: v.GetString("GOOGLE_TRANSLATE_BASE_URL"),
			Timeout: v.GetDuration("TRANSLATE_TIMEOUT"),
		},
		NewsAPI: NewsAPIConfig{
			APIKey:   v.GetString("NEWS_API_KEY"),
			BaseURL:  v.GetString("NEWS_API_BASE_URL"),
			Country:  v.GetString("NEWS_API_COUNTRY"),
			PageSize: v.GetInt("NEWS_API_PAGE_SIZE"),
			Timeout:  v.GetDuration("NEWS_API_TIMEOUT"),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(v.GetString("LOG_LEVEL")),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		RateLimit: RateLimitConfig{
			Auth:      v.GetInt("RATE_LIMIT_AUTH"),
			Upload:    v.GetInt("RATE_LIMIT_UPLOAD"),
			Translate: v.GetInt("RATE_LIMIT_TRANSLATE"),
			Window:    v.GetDuration("RATE_LIMIT_WINDOW"),
		},
		Seed: SeedConfig{
			AdminEmail:    v.GetString("ADMIN_EMAIL"),
			AdminPassword: v.GetString("ADMIN_PASSWORD"),
			AdminName:     v.GetString("ADMIN_NAME"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate rejects settings the service cannot start with.
func (c *Config) Validate() error {
	var errs []error

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Env == "production" && len(c.JWT.Secret) < 32 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 32 characters in production"))
	}
	if c.Storage.Driver != "bunny" && c.Storage.Driver != "s3" {
		errs = append(errs, fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver))
	}
	if c.RateLimit.Window <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_WINDOW must be positive"))
	}

	return errors.Join(errs...)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// DSN returns the PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// ParseExpiry accepts Go durations ("168h") and whole days ("7d").
func ParseExpiry(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("expiry must be positive, got %s", s)
	}
	return d, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
