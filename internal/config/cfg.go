package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

type Server struct {
	Address      string `envconfig:"DASHBOARD_SERVER_ADDRESS" default:":8080"`
	ReadTimeout  int    `envconfig:"DASHBOARD_SERVER_READ_TIMEOUT" default:"10"`
	WriteTimeout int    `envconfig:"DASHBOARD_SERVER_WRITE_TIMEOUT" default:"15"`
}

type OpenMeteo struct {
	URL     string `envconfig:"OPEN_METEO_URL" default:"https://api.open-meteo.com/v1/forecast"`
	Timeout int    `envconfig:"OPEN_METEO_TIMEOUT" default:"10"`
}

type Breaker struct {
	TimeInterval int    `envconfig:"BREAKER_INTERVAL" default:"30"`
	TimeTimeOut  int    `envconfig:"BREAKER_TIMEOUT" default:"10"`
	RepeatNumber uint32 `envconfig:"BREAKER_REPEAT_NUM" default:"5"`
}

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Cache struct {
	Backend string `envconfig:"CACHE_BACKEND" default:"memory"`
	TTL     int    `envconfig:"CACHE_TTL" default:"900"`
}

type Redis struct {
	Host   string `envconfig:"REDIS_HOST" default:"localhost"`
	Port   string `envconfig:"REDIS_PORT" default:"6379"`
	DbType int    `envconfig:"REDIS_DB_TYPE" default:"0"`
}

type Config struct {
	Server    Server
	OpenMeteo OpenMeteo
	Breaker   Breaker
	Cache     Cache
	Redis     Redis

	LogsPath     string `envconfig:"LOGS_PATH" default:"./log/weather-dashboard.log"`
	HTTPLogsPath string `envconfig:"HTTP_LOGS_PATH" default:"./log/open-meteo-requests.log"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings under which a failed fetch could not be reported:
// the response must still be writable once the upstream call has timed out.
func (c Config) Validate() error {
	var errs []error
	if c.OpenMeteo.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("OPEN_METEO_TIMEOUT must be positive, got %d", c.OpenMeteo.Timeout))
	}
	if c.Server.WriteTimeout <= c.OpenMeteo.Timeout {
		errs = append(errs, fmt.Errorf(
			"DASHBOARD_SERVER_WRITE_TIMEOUT (%d) must exceed OPEN_METEO_TIMEOUT (%d)",
			c.Server.WriteTimeout, c.OpenMeteo.Timeout))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be positive, got %d", c.Cache.TTL))
	}
	return errors.Join(errs...)
}

// FetchTimeout bounds one upstream fetch, including the wait of joined requests.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.OpenMeteo.Timeout) * time.Second
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTL) * time.Second
}

func (c Config) RedisAddress() string {
	return c.Redis.Host + ":" + c.Redis.Port
}

// ForecastRequest is the fixed Open-Meteo request the dashboard issues.
// Location and field lists are part of the program, not the environment.
func (c Config) ForecastRequest() models.ForecastRequest {
	return models.ForecastRequest{
		Location:      Bristol,
		CurrentFields: append([]string(nil), currentFields...),
		HourlyFields:  append([]string(nil), hourlyFields...),
	}
}
