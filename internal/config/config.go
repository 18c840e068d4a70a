package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	Routing RoutingConfig
	Extract ExtractConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds settings for archiving raw report documents. Archiving is
// disabled when Bucket is empty.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether raw document archiving is configured.
func (s *S3Config) Enabled() bool { return s.Bucket != "" }

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RoutingConfig holds the tunable routing surface: the fast-track threshold
// and the keyword vocabularies. Every list can be overridden via environment
// without code changes.
type RoutingConfig struct {
	FastTrackThreshold float64  `mapstructure:"fast_track_threshold"`
	FraudKeywords      []string `mapstructure:"fraud_keywords"`
	InjuryKeywords     []string `mapstructure:"injury_keywords"`
}

// ExtractConfig holds the extraction engine's tunable vocabulary.
type ExtractConfig struct {
	RequiredFields []string `mapstructure:"required_fields"`
}

// Default keyword vocabularies. These mirror the lists claim handlers have
// tuned in production; overrides come in as comma-separated env values.
var (
	defaultFraudKeywords = []string{
		"fraud", "fraudulent", "false", "fake", "staged", "setup",
		"inconsistent", "contradict", "lie", "lied", "lying",
		"misrepresent", "exaggerat", "inflated", "suspicious",
		"fabricated", "concocted", "scam", "scheme",
	}
	defaultInjuryKeywords = []string{
		"injury", "injured", "hurt", "pain", "hospital",
		"ambulance", "medical", "doctor", "fracture", "broken",
		"whiplash", "concussion", "bleeding", "wound", "laceration",
		"surgery", "therapy", "treatment", "paramedic", "emergency",
	}
	defaultRequiredFields = []string{
		"policy_number",
		"policyholder_name",
		"date_of_loss",
		"location",
		"description",
		"estimated_damage",
		"claim_type",
	}
)

// Load reads configuration from environment variables with the FNOL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FNOL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fnol")
	v.SetDefault("db.password", "fnol_secret")
	v.SetDefault("db.name", "fnol_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults (archiving off unless a bucket is configured)
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Routing defaults
	v.SetDefault("routing.fast_track_threshold", 25000.0)
	v.SetDefault("routing.fraud_keywords", strings.Join(defaultFraudKeywords, ","))
	v.SetDefault("routing.injury_keywords", strings.Join(defaultInjuryKeywords, ","))

	// Extraction defaults
	v.SetDefault("extract.required_fields", strings.Join(defaultRequiredFields, ","))

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "FNOL_SERVER_PORT",
		"server.read_timeout":          "FNOL_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "FNOL_SERVER_WRITE_TIMEOUT",
		"server.environment":           "FNOL_SERVER_ENVIRONMENT",
		"db.host":                      "FNOL_DB_HOST",
		"db.port":                      "FNOL_DB_PORT",
		"db.user":                      "FNOL_DB_USER",
		"db.password":                  "FNOL_DB_PASSWORD",
		"db.name":                      "FNOL_DB_NAME",
		"db.sslmode":                   "FNOL_DB_SSLMODE",
		"db.max_open":                  "FNOL_DB_MAX_OPEN",
		"db.max_idle":                  "FNOL_DB_MAX_IDLE",
		"s3.region":                    "FNOL_S3_REGION",
		"s3.bucket":                    "FNOL_S3_BUCKET",
		"s3.endpoint":                  "FNOL_S3_ENDPOINT",
		"s3.access_key":                "FNOL_S3_ACCESS_KEY",
		"s3.secret_key":                "FNOL_S3_SECRET_KEY",
		"log.level":                    "FNOL_LOG_LEVEL",
		"log.format":                   "FNOL_LOG_FORMAT",
		"routing.fast_track_threshold": "FNOL_ROUTING_FAST_TRACK_THRESHOLD",
		"routing.fraud_keywords":       "FNOL_ROUTING_FRAUD_KEYWORDS",
		"routing.injury_keywords":      "FNOL_ROUTING_INJURY_KEYWORDS",
		"extract.required_fields":      "FNOL_EXTRACT_REQUIRED_FIELDS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FNOL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FNOL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Routing = RoutingConfig{
		FastTrackThreshold: v.GetFloat64("routing.fast_track_threshold"),
		FraudKeywords:      splitList(v.GetString("routing.fraud_keywords")),
		InjuryKeywords:     splitList(v.GetString("routing.injury_keywords")),
	}
	cfg.Extract = ExtractConfig{
		RequiredFields: splitList(v.GetString("extract.required_fields")),
	}

	return cfg, nil
}

// splitList parses a comma-separated value into a trimmed, non-empty slice.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
