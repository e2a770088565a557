package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Addr     string `mapstructure:"ADDR" validate:"required"`
	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`

	DBDriver    string `mapstructure:"DB_DRIVER" validate:"oneof=sqlite postgres"`
	DatabaseDSN string `mapstructure:"DATABASE_DSN" validate:"required"`

	SessionStore  string        `mapstructure:"SESSION_STORE" validate:"oneof=memory redis"`
	RedisAddr     string        `mapstructure:"REDIS_ADDR" validate:"required_if=SessionStore redis"`
	RedisPassword string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int           `mapstructure:"REDIS_DB" validate:"gte=0"`
	SessionTTL    time.Duration `mapstructure:"SESSION_TTL" validate:"gt=0"`

	QuestionsPerQuiz  int  `mapstructure:"QUESTIONS_PER_QUIZ" validate:"gt=0,lte=10"`
	RecordEveryAnswer bool `mapstructure:"RECORD_EVERY_ANSWER"`
	SeedQuestions     bool `mapstructure:"SEED_QUESTIONS"`
	PassingScore      int  `mapstructure:"PASSING_SCORE" validate:"gte=0,lte=100"`
	TimeLimit         int  `mapstructure:"TIME_LIMIT" validate:"gt=0"`

	JWTSecret         string        `mapstructure:"JWT_SECRET" validate:"required,min=16"`
	AdminUsername     string        `mapstructure:"ADMIN_USERNAME" validate:"required"`
	AdminPassword     string        `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	AdminTokenTTL     time.Duration `mapstructure:"ADMIN_TOKEN_TTL" validate:"gt=0"`

	GeminiModel string   `mapstructure:"GEMINI_MODEL"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"ADDR":                ":8080",
	"LOG_LEVEL":           "info",
	"DB_DRIVER":           "sqlite",
	"DATABASE_DSN":        "file:quiz.db?_foreign_keys=on",
	"SESSION_STORE":       "memory",
	"REDIS_ADDR":          "localhost:6379",
	"REDIS_PASSWORD":      "",
	"REDIS_DB":            0,
	"SESSION_TTL":         "2h",
	"QUESTIONS_PER_QUIZ":  10,
	"RECORD_EVERY_ANSWER": false,
	"SEED_QUESTIONS":      true,
	"PASSING_SCORE":       60,
	"TIME_LIMIT":          30,
	"JWT_SECRET":          "",
	"ADMIN_USERNAME":      "admin",
	"ADMIN_PASSWORD":      "2026",
	"ADMIN_PASSWORD_HASH": "",
	"ADMIN_TOKEN_TTL":     "12h",
	"GEMINI_MODEL":        "gemini-2.0-flash",
	"CORS_ORIGINS":        "*",
}

// Load reads the process environment on top of the defaults and validates the
// result. Every key must have a default so viper binds it to the environment.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
