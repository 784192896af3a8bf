package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Instantly       Instantly       `mapstructure:",squash"`
	Lemlist         Lemlist         `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Fetch           Fetch           `mapstructure:",squash"`
	CredentialCheck CredentialCheck `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Instantly configures the bulk-email platform client. Tenant API keys are
// passed per call; only the base URL and timeouts live here.
type Instantly struct {
	BaseURL        string `mapstructure:"instantly_base_url"`
	TimeoutSeconds int    `mapstructure:"instantly_timeout_seconds"`
}

// Lemlist configures the multichannel platform client.
type Lemlist struct {
	BaseURL        string `mapstructure:"lemlist_base_url"`
	TimeoutSeconds int    `mapstructure:"lemlist_timeout_seconds"`
}

type Auth struct {
	Secret          string `mapstructure:"auth_secret"`
	TokenTTLMinutes int    `mapstructure:"auth_token_ttl_minutes"`
}

// Fetch bounds the per-request fan-out against the upstream platforms.
type Fetch struct {
	MaxConcurrent          int `mapstructure:"fetch_max_concurrent"`
	RequestTimeoutSeconds  int `mapstructure:"fetch_request_timeout_seconds"`
	RetryMaxAttempts       int `mapstructure:"fetch_retry_max_attempts"`
	RetryBaseDelayMillis   int `mapstructure:"fetch_retry_base_delay_millis"`
	ChunkMaxDays           int `mapstructure:"fetch_chunk_max_days"`
	ActivityPageSize       int `mapstructure:"fetch_activity_page_size"`
	ActivityMaxRecords     int `mapstructure:"fetch_activity_max_records"`
	LeaderboardNameMaxLen  int `mapstructure:"fetch_leaderboard_name_max_len"`
	WeeklyTrendWeeks       int `mapstructure:"fetch_weekly_trend_weeks"`
}

type CredentialCheck struct {
	CronSchedule string `mapstructure:"credential_check_cron"`
	Enabled      bool   `mapstructure:"credential_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/outreach")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("INSTANTLY_BASE_URL", "https://api.instantly.ai/api/v1")
	viper.SetDefault("INSTANTLY_TIMEOUT_SECONDS", 30)

	viper.SetDefault("LEMLIST_BASE_URL", "https://api.lemlist.com/api")
	viper.SetDefault("LEMLIST_TIMEOUT_SECONDS", 30)

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")
	viper.SetDefault("AUTH_TOKEN_TTL_MINUTES", 480)

	viper.SetDefault("FETCH_MAX_CONCURRENT", 8)
	viper.SetDefault("FETCH_REQUEST_TIMEOUT_SECONDS", 30)
	viper.SetDefault("FETCH_RETRY_MAX_ATTEMPTS", 3)
	viper.SetDefault("FETCH_RETRY_BASE_DELAY_MILLIS", 1000)
	viper.SetDefault("FETCH_CHUNK_MAX_DAYS", 30)
	viper.SetDefault("FETCH_ACTIVITY_PAGE_SIZE", 100)
	viper.SetDefault("FETCH_ACTIVITY_MAX_RECORDS", 10000)
	viper.SetDefault("FETCH_LEADERBOARD_NAME_MAX_LEN", 30)
	viper.SetDefault("FETCH_WEEKLY_TREND_WEEKS", 8)

	viper.SetDefault("CREDENTIAL_CHECK_CRON", "0 5 * * *")
	viper.SetDefault("CREDENTIAL_CHECK_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("using variables loaded by godotenv (viper could not read .env):", err)
	} else {
		logrus.Info(".env file read by viper")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// RequestTimeout is the per-request deadline threaded through every
// downstream call issued for a dashboard request.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Fetch.RequestTimeoutSeconds) * time.Second
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not determine current directory:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info(".env file loaded from:", location)
			return
		}
	}

	logrus.Warn("no .env file found in any known location")
}
