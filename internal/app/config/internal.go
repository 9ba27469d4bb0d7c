package config

import "time"

type InternalConfig struct {
	App        App
	SirsakAPI  AppSirsakAPI
	Probe      AppProbe
	Submission AppSubmission
	Catalog    AppCatalog
	Builder    AppBuilder
	Events     AppEvents
}

type App struct {
	Env                      string
	Port                     string
	Version                  string
	Timezone                 string
	EndpointPrefix           string
	AllowedOrigins           []string
	MaxRequests              int
	ShutdownTimeoutInSeconds int
}

// AppSirsakAPI points at the remote reservation API the service fronts.
type AppSirsakAPI struct {
	BaseUrl            string
	RequestTimeout     time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
	// JWTSecret is the HMAC key the reservation API signs its access tokens
	// with. Tokens that do not verify against it are rejected.
	JWTSecret string
	// ServiceToken authenticates background jobs that run without a user session.
	ServiceToken string
}

type AppProbe struct {
	Timeout     time.Duration
	Concurrency int
}

type AppSubmission struct {
	LockTTL time.Duration
	// RateLimit caps submissions per user within RateWindowInSeconds. Zero disables it.
	RateLimit           int
	RateWindowInSeconds int
}

type AppCatalog struct {
	CacheTTL time.Duration
	CronSpec string
}

type AppBuilder struct {
	IdleTTL       time.Duration
	SweepCronSpec string
}

type AppEvents struct {
	ReservationSubmittedQueue string
}
