package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sm8ta/webike_wear_microservice/internal/core/domain"
)

const (
	defaultStravaBaseURL  = "https://www.strava.com/api/v3"
	defaultStravaTokenURL = "https://www.strava.com/oauth/token"
	defaultStravaTimeout  = 30 * time.Second
	defaultSyncWorkers    = 8
)

type (
	Container struct {
		App    *App
		Token  *Token
		DB     *DB
		HTTP   *HTTP
		Redis  *Redis
		Strava *Strava
		Sync   *Sync
		Log    *Log
	}

	App struct {
		Name string
		Env  string
	}

	Token struct {
		Secret   string
		Duration string
	}

	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
	}

	HTTP struct {
		Env            string
		Port           string
		AllowedOrigins string
		URL            string
	}

	Redis struct {
		Address  string
		Password string
		DB       string
	}

	Strava struct {
		ClientID     string
		ClientSecret string
		BaseURL      string
		TokenURL     string
		Timeout      string
	}

	Sync struct {
		DistanceStrategy     string
		IncrementalPageLimit string
		Workers              string
	}

	Log struct {
		Level      string
		File       string
		MaxSizeMB  string
		MaxBackups string
		MaxAgeDays string
	}
)

func New() (*Container, error) {
	if os.Getenv("APP_ENV") != "production" {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	app := &App{
		Name: os.Getenv("APP_NAME"),
		Env:  os.Getenv("APP_ENV"),
	}

	token := &Token{
		Secret:   os.Getenv("TOKEN_SECRET"),
		Duration: os.Getenv("TOKEN_DURATION"),
	}

	db := &DB{
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
	}

	http := &HTTP{
		Port:           os.Getenv("HTTP_PORT"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		URL:            os.Getenv("HTTP_URL"),
		Env:            os.Getenv("APP_ENV"),
	}

	redis := &Redis{
		Address:  os.Getenv("REDIS_ADDRESS"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       os.Getenv("REDIS_DB"),
	}

	strava := &Strava{
		ClientID:     os.Getenv("STRAVA_CLIENT_ID"),
		ClientSecret: os.Getenv("STRAVA_CLIENT_SECRET"),
		BaseURL:      getEnv("STRAVA_BASE_URL", defaultStravaBaseURL),
		TokenURL:     getEnv("STRAVA_TOKEN_URL", defaultStravaTokenURL),
		Timeout:      os.Getenv("STRAVA_TIMEOUT"),
	}

	sync := &Sync{
		DistanceStrategy:     os.Getenv("DISTANCE_STRATEGY"),
		IncrementalPageLimit: os.Getenv("SYNC_INCREMENTAL_PAGES"),
		Workers:              os.Getenv("SYNC_WORKERS"),
	}

	log := &Log{
		Level:      getEnv("LOG_LEVEL", "info"),
		File:       os.Getenv("LOG_FILE"),
		MaxSizeMB:  os.Getenv("LOG_MAX_SIZE_MB"),
		MaxBackups: os.Getenv("LOG_MAX_BACKUPS"),
		MaxAgeDays: os.Getenv("LOG_MAX_AGE_DAYS"),
	}

	return &Container{
		App:    app,
		Token:  token,
		DB:     db,
		HTTP:   http,
		Redis:  redis,
		Strava: strava,
		Sync:   sync,
		Log:    log,
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}

func (r *Redis) DBInt() int {
	return atoiOr(r.DB, 0)
}

// TimeoutDuration accepts Go durations ("45s") or plain seconds ("45").
func (s *Strava) TimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(s.Timeout); err == nil && d > 0 {
		return d
	}
	if secs := atoiOr(s.Timeout, 0); secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return defaultStravaTimeout
}

// Strategy falls back to gear_delta for empty or unknown values.
func (s *Sync) Strategy() domain.DistanceStrategy {
	switch strategy := domain.DistanceStrategy(s.DistanceStrategy); strategy {
	case domain.GearDelta, domain.MaxEstimate:
		return strategy
	default:
		return domain.GearDelta
	}
}

// IncrementalPages is 0 when unset, which lets the sync service use its own default.
func (s *Sync) IncrementalPages() int {
	return atoiOr(s.IncrementalPageLimit, 0)
}

func (s *Sync) WorkersInt() int {
	n := atoiOr(s.Workers, defaultSyncWorkers)
	if n == 0 {
		return defaultSyncWorkers
	}
	return n
}

func (l *Log) MaxSizeMBInt() int {
	return atoiOr(l.MaxSizeMB, 100)
}

func (l *Log) MaxBackupsInt() int {
	return atoiOr(l.MaxBackups, 5)
}

func (l *Log) MaxAgeDaysInt() int {
	return atoiOr(l.MaxAgeDays, 30)
}
