package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/matchday/internal/common/clock"
	"github.com/KirkDiggler/matchday/internal/config"
	"github.com/KirkDiggler/matchday/internal/handlers/telegram"
	"github.com/KirkDiggler/matchday/internal/metrics"
	"github.com/KirkDiggler/matchday/internal/repositories/profile"
	"github.com/KirkDiggler/matchday/internal/repositories/session"
	"github.com/KirkDiggler/matchday/internal/schedule"
	"github.com/KirkDiggler/matchday/internal/scheduler"
	"github.com/KirkDiggler/matchday/internal/services/directory"
	"github.com/KirkDiggler/matchday/internal/services/publisher"
	"github.com/KirkDiggler/matchday/internal/services/roster"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("Failed to load timezone: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	profileRepo, err := profile.NewRedis(&profile.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create profile repository: %v", err)
	}

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	// Initialize services
	systemClock := &clock.DefaultClock{}

	directorySvc, err := directory.NewService(&directory.Config{
		ProfileRepo: profileRepo,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create directory service: %v", err)
	}

	resolver := schedule.New(&schedule.Config{
		Weekday:  time.Wednesday,
		Location: location,
	})

	rosterSvc, err := roster.NewService(&roster.Config{
		SessionRepo: sessionRepo,
		Resolver:    resolver,
		Clock:       systemClock,
	})
	if err != nil {
		log.Fatalf("Failed to create roster service: %v", err)
	}

	// Initialize Telegram API client
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		log.Fatalf("Failed to create Telegram client: %v", err)
	}

	transport := telegram.NewTransport(api)

	publisherSvc, err := publisher.NewService(&publisher.Config{
		Roster:    rosterSvc,
		Transport: transport,
	})
	if err != nil {
		log.Fatalf("Failed to create publisher service: %v", err)
	}

	// Initialize bot
	bot, err := telegram.New(&telegram.Config{
		API:       api,
		Roster:    rosterSvc,
		Directory: directorySvc,
		Publisher: publisherSvc,
		ChatID:    cfg.ChatID,
		AdminIDs:  cfg.AdminIDs,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	// Initialize scheduler
	notifyHour, notifyMinute, err := config.ParseNotifyTime(cfg.NotifyTime)
	if err != nil {
		log.Fatalf("Failed to parse notify time: %v", err)
	}

	sched, err := scheduler.New(&scheduler.Config{
		Roster:       rosterSvc,
		Publisher:    publisherSvc,
		Transport:    transport,
		Prompter:     bot,
		ChatID:       cfg.ChatID,
		Location:     location,
		NotifyHour:   notifyHour,
		NotifyMinute: notifyMinute,
	})
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Expose metrics
	if err := metrics.Serve(cfg.MetricsAddr); err != nil {
		log.Fatalf("Failed to start metrics server: %v", err)
	}

	// Start everything
	bot.Start()
	sched.Start()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	sched.Stop()
	bot.Stop()

	if err := redisClient.Close(); err != nil {
		log.Printf("Error closing Redis client: %v", err)
	}

	log.Println("Bot has been shut down")
}
