package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	Server      Server
	Database    Database
	Auth        Auth
	Evaluator   Evaluator
	Submission  Submission
	Redis       Redis
	Leaderboard Leaderboard
	Tracing     Tracing
	Badges      BadgeCatalog
}

type Server struct {
	Port               string
	CORSAllowedOrigins []string
}

type Database struct {
	Driver     string // "postgres" or "sqlite"
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

type Auth struct {
	JWTSecret string
}

// Enabled reports whether bearer tokens are required on user routes.
func (a Auth) Enabled() bool {
	return a.JWTSecret != ""
}

type Evaluator struct {
	Kind         string // "keyword" or "gemini"
	GeminiAPIKey string
	GeminiModel  string
}

type Submission struct {
	// AllowClientAnswer lets callers send correctAnswer/xpReward instead of
	// having the server look the question up.
	AllowClientAnswer bool
}

type Redis struct {
	Addr     string
	Password string
}

type Leaderboard struct {
	ResyncMinutes int
}

type Tracing struct {
	Enabled bool
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("SQLITE_PATH", "shambaquest.db")
	viper.SetDefault("EVALUATOR", "keyword")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("LEADERBOARD_RESYNC_MINUTES", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.AppEnv = viper.GetString("APP_ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")
	config.Database.SQLitePath = viper.GetString("SQLITE_PATH")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")

	config.Evaluator.Kind = strings.ToLower(viper.GetString("EVALUATOR"))
	config.Evaluator.GeminiAPIKey = viper.GetString("GEMINI_API_KEY")
	config.Evaluator.GeminiModel = viper.GetString("GEMINI_MODEL")

	config.Submission.AllowClientAnswer = viper.GetBool("SUBMISSION_ALLOW_CLIENT_ANSWER")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")

	config.Leaderboard.ResyncMinutes = viper.GetInt("LEADERBOARD_RESYNC_MINUTES")

	config.Tracing.Enabled = viper.GetBool("OTEL_ENABLED")

	badges, err := LoadBadgeCatalog(viper.GetString("BADGE_CATALOG_PATH"))
	if err != nil {
		return nil, err
	}
	config.Badges = badges

	log.Info().Interface("config", config.redacted()).Msg("Config loaded")
	return &config, nil
}

func (c Config) redacted() Config {
	out := c
	if out.Database.Password != "" {
		out.Database.Password = "***"
	}
	if out.Auth.JWTSecret != "" {
		out.Auth.JWTSecret = "***"
	}
	if out.Evaluator.GeminiAPIKey != "" {
		out.Evaluator.GeminiAPIKey = "***"
	}
	if out.Redis.Password != "" {
		out.Redis.Password = "***"
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
