package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env    string
	Logger LoggerConfig
	Server ServerConfig
	Quiz   QuizConfig
	Redis  RedisConfig
}

type LoggerConfig struct {
	Level string
	Env   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// QuizConfig controls where questions come from and how the session paces itself.
type QuizConfig struct {
	Source           string        // file path or http(s) URL of the question document
	FetchTimeout     time.Duration // upper bound for the single load attempt
	FeedbackDelay    time.Duration // pause between selecting an option and revealing the verdict
	AutoAdvanceDelay time.Duration
	RestartDelay     time.Duration
	AutoAdvance      bool // initial state of the auto-advance toggle
	AssetsDir        string
}

type RedisConfig struct {
	Address   string
	Password  string
	DB        int
	ResultTTL time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("quiz.source", "questions.json")
	v.SetDefault("quiz.fetch_timeout", "10s")
	v.SetDefault("quiz.feedback_delay", "300ms")
	v.SetDefault("quiz.auto_advance_delay", "10s")
	v.SetDefault("quiz.restart_delay", "400ms")
	v.SetDefault("quiz.auto_advance", false)
	v.SetDefault("quiz.assets_dir", "assets")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.result_ttl", "168h")
}

func LoadConfig() (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("env", "ENV")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env: v.GetString("env"),
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("env"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Quiz: QuizConfig{
			Source:           v.GetString("quiz.source"),
			FetchTimeout:     v.GetDuration("quiz.fetch_timeout"),
			FeedbackDelay:    v.GetDuration("quiz.feedback_delay"),
			AutoAdvanceDelay: v.GetDuration("quiz.auto_advance_delay"),
			RestartDelay:     v.GetDuration("quiz.restart_delay"),
			AutoAdvance:      v.GetBool("quiz.auto_advance"),
			AssetsDir:        v.GetString("quiz.assets_dir"),
		},
		Redis: RedisConfig{
			Address:   v.GetString("redis.address"),
			Password:  v.GetString("redis.password"),
			DB:        v.GetInt("redis.db"),
			ResultTTL: v.GetDuration("redis.result_ttl"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the quiz cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Quiz.Source) == "" {
		return errors.New("quiz.source must not be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Quiz.FeedbackDelay < 0 || c.Quiz.AutoAdvanceDelay < 0 || c.Quiz.RestartDelay < 0 {
		return errors.New("quiz delays must not be negative")
	}
	return nil
}

// RedisEnabled reports whether completed quiz results should be recorded.
func (c *Config) RedisEnabled() bool {
	return c.Redis.Address != ""
}
