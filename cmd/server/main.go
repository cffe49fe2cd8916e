package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/speedmeet/internal/common/clock"
	"github.com/KirkDiggler/speedmeet/internal/common/uuid"
	"github.com/KirkDiggler/speedmeet/internal/config"
	"github.com/KirkDiggler/speedmeet/internal/events"
	"github.com/KirkDiggler/speedmeet/internal/handlers/rest"
	participantRepo "github.com/KirkDiggler/speedmeet/internal/repositories/participant"
	planRepo "github.com/KirkDiggler/speedmeet/internal/repositories/plan"
	"github.com/KirkDiggler/speedmeet/internal/scheduler"
	"github.com/KirkDiggler/speedmeet/internal/services/messaging"
	participantService "github.com/KirkDiggler/speedmeet/internal/services/participant"
	sessionService "github.com/KirkDiggler/speedmeet/internal/services/session"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	clk := clock.New()
	ids := uuid.New()

	// Initialize repositories
	participants, err := participantRepo.NewRedis(&participantRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create participant repository: %v", err)
	}

	var plans planRepo.Repository
	switch cfg.PlanStore {
	case config.PlanStoreMemory:
		plans = planRepo.NewMemory()
	default:
		plans, err = planRepo.NewRedis(&planRepo.Config{
			RedisClient:   redisClient,
			PlanRetention: cfg.PlanRetention,
		})
		if err != nil {
			log.Fatalf("Failed to create plan repository: %v", err)
		}
	}
	log.Printf("Session plans stored in %s", cfg.PlanStore)

	var publisher events.Publisher = events.NewNoop()
	if cfg.AMQPURL != "" {
		publisher, err = events.NewAMQP(&events.AMQPConfig{
			URL:   cfg.AMQPURL,
			Queue: cfg.AMQPQueue,
			Clock: clk,
		})
		if err != nil {
			log.Fatalf("Failed to create event publisher: %v", err)
		}
	} else {
		log.Println("AMQP_URL not set, session events are not published")
	}

	sched, err := scheduler.New(&scheduler.Config{
		MaxImprovePasses:   cfg.SchedulerImprovePasses,
		MaxSwapEvaluations: cfg.SchedulerSwapBudget,
		MaxRounds:          cfg.SchedulerMaxRounds,
		MaxParticipants:    cfg.SchedulerMaxParticipants,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Initialize services
	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		log.Fatalf("Failed to create messaging service: %v", err)
	}

	participantSvc, err := participantService.New(&participantService.Config{
		Repository:    participants,
		Clock:         clk,
		UUIDGenerator: ids,
	})
	if err != nil {
		log.Fatalf("Failed to create participant service: %v", err)
	}

	sessionSvc, err := sessionService.New(&sessionService.Config{
		ParticipantRepo:  participants,
		PlanRepo:         plans,
		Scheduler:        sched,
		MessagingService: messages,
		Publisher:        publisher,
		Clock:            clk,
		UUIDGenerator:    ids,
	})
	if err != nil {
		log.Fatalf("Failed to create session service: %v", err)
	}

	handler, err := rest.New(&rest.Config{
		SessionService:         sessionSvc,
		ParticipantService:     participantSvc,
		MessagingService:       messages,
		DefaultMinutesPerRound: cfg.DefaultMinutesPerRound,
		DefaultSessionDuration: cfg.DefaultSessionDuration,
	})
	if err != nil {
		log.Fatalf("Failed to create REST handler: %v", err)
	}

	limiter, err := rest.NewRateLimiter(&rest.RateLimitConfig{
		RedisClient: redisClient,
		Clock:       clk,
		Messages:    messages,
		Requests:    cfg.RateLimitRequests,
		Window:      cfg.RateLimitWindow,
	})
	if err != nil {
		log.Fatalf("Failed to create rate limiter: %v", err)
	}

	e := rest.NewServer(&rest.ServerConfig{
		Handler:     handler,
		CORSOrigins: cfg.CORSOrigins,
		RateLimit:   limiter,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Speed meeting API listening on %s", cfg.Addr())
	if err := runServer(ctx, srv, cfg.ShutdownTimeout); err != nil {
		log.Fatalf("Server error: %v", err)
	}

	log.Println("Server has been shut down")
}

func runServer(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
