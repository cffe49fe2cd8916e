package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Plan store backends
const (
	PlanStoreRedis  = "redis"
	PlanStoreMemory = "memory"
)

// Config is the server configuration read from the environment
type Config struct {
	Port            int           `env:"PORT" envDefault:"8000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// PlanStore selects where session plans live: redis or memory
	PlanStore     string        `env:"PLAN_STORE" envDefault:"redis"`
	PlanRetention time.Duration `env:"PLAN_RETENTION" envDefault:"24h"`

	// AMQPURL enables session.generated announcements when set
	AMQPURL   string `env:"AMQP_URL"`
	AMQPQueue string `env:"AMQP_QUEUE" envDefault:"session.generated"`

	// Request limit per client on itinerary polling and previews
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"30"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`

	DefaultMinutesPerRound int `env:"DEFAULT_MINUTES_PER_ROUND" envDefault:"10"`
	DefaultSessionDuration int `env:"DEFAULT_SESSION_DURATION" envDefault:"60"`

	// Scheduler limits keep a generation to one quick response
	SchedulerImprovePasses   int `env:"SCHEDULER_IMPROVE_PASSES" envDefault:"64"`
	SchedulerSwapBudget      int `env:"SCHEDULER_SWAP_BUDGET" envDefault:"1000000"`
	SchedulerMaxRounds       int `env:"SCHEDULER_MAX_ROUNDS" envDefault:"100"`
	SchedulerMaxParticipants int `env:"SCHEDULER_MAX_PARTICIPANTS" envDefault:"2000"`
}

// Load reads an optional .env file and then the environment
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}

	switch c.PlanStore {
	case PlanStoreRedis, PlanStoreMemory:
	default:
		return fmt.Errorf("invalid PLAN_STORE %q, expected %s or %s", c.PlanStore, PlanStoreRedis, PlanStoreMemory)
	}

	if c.RateLimitRequests < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
	}

	if c.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}

	if c.DefaultMinutesPerRound < 1 || c.DefaultSessionDuration < 1 {
		return fmt.Errorf("default session timings must be positive")
	}

	if c.SchedulerImprovePasses < 0 {
		return fmt.Errorf("SCHEDULER_IMPROVE_PASSES cannot be negative")
	}

	if c.SchedulerSwapBudget < 1 || c.SchedulerMaxRounds < 1 || c.SchedulerMaxParticipants < 1 {
		return fmt.Errorf("SCHEDULER_SWAP_BUDGET, SCHEDULER_MAX_ROUNDS and SCHEDULER_MAX_PARTICIPANTS must be positive")
	}

	return nil
}

// Addr is the listen address
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
