package config

import (
	"sirsak-service/internal/pkg/constvars"
	"sirsak-service/internal/pkg/utils"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", true),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	probeConcurrency := utils.GetEnvInt("SIRSAK_PROBE_CONCURRENCY", 24)
	if probeConcurrency <= 0 {
		probeConcurrency = 1
	}

	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", constvars.DefaultAppTimezone),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:           splitCSV(utils.GetEnvString("APP_ALLOWED_ORIGINS", "*")),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
		},
		SirsakAPI: AppSirsakAPI{
			BaseUrl:            strings.TrimRight(utils.GetEnvString("SIRSAK_API_BASE_URL", "http://localhost:8000/api"), "/"),
			RequestTimeout:     utils.GetEnvMilliseconds("SIRSAK_API_REQUEST_TIMEOUT_IN_MILLISECONDS", 10000),
			RateLimitPerSecond: utils.GetEnvInt("SIRSAK_API_RATE_LIMIT_PER_SECOND", 50),
			RateLimitBurst:     utils.GetEnvInt("SIRSAK_API_RATE_LIMIT_BURST", 10),
			JWTSecret:          utils.GetEnvString("SIRSAK_JWT_SECRET", ""),
			ServiceToken:       utils.GetEnvString("SIRSAK_API_SERVICE_TOKEN", ""),
		},
		Probe: AppProbe{
			Timeout:     utils.GetEnvMilliseconds("SIRSAK_PROBE_TIMEOUT_IN_MILLISECONDS", 5000),
			Concurrency: probeConcurrency,
		},
		Submission: AppSubmission{
			LockTTL:             time.Duration(utils.GetEnvInt("SUBMISSION_LOCK_TTL_IN_SECONDS", 30)) * time.Second,
			RateLimit:           utils.GetEnvInt("SUBMISSION_RATE_LIMIT", 10),
			RateWindowInSeconds: utils.GetEnvInt("SUBMISSION_RATE_WINDOW_IN_SECONDS", 60),
		},
		Catalog: AppCatalog{
			CacheTTL: time.Duration(utils.GetEnvInt("CATALOG_CACHE_TTL_IN_MINUTES", 60)) * time.Minute,
			CronSpec: utils.GetEnvString("CATALOG_REFRESH_CRON_SPEC", constvars.DefaultCatalogCronSpec),
		},
		Builder: AppBuilder{
			IdleTTL:       time.Duration(utils.GetEnvInt("BUILDER_IDLE_TTL_IN_MINUTES", 30)) * time.Minute,
			SweepCronSpec: utils.GetEnvString("BUILDER_SWEEP_CRON_SPEC", constvars.DefaultBuilderSweepSpec),
		},
		Events: AppEvents{
			ReservationSubmittedQueue: utils.GetEnvString("APP_RABBITMQ_RESERVATION_SUBMITTED_QUEUE", "reservation_submitted_events"),
		},
	}
}

func splitCSV(raw string) []string {
	var values []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}
	return values
}
