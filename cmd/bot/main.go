package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/clockin/internal/common/clock"
	"github.com/KirkDiggler/clockin/internal/common/uuid"
	"github.com/KirkDiggler/clockin/internal/handlers/discord"
	guildRepo "github.com/KirkDiggler/clockin/internal/repositories/guild"
	memberRepo "github.com/KirkDiggler/clockin/internal/repositories/member"
	projectRepo "github.com/KirkDiggler/clockin/internal/repositories/project"
	sessionRepo "github.com/KirkDiggler/clockin/internal/repositories/session"
	"github.com/KirkDiggler/clockin/internal/services/attendance"
	"github.com/KirkDiggler/clockin/internal/services/liveness"
	"github.com/KirkDiggler/clockin/internal/services/report"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create session repository: %v", err)
	}

	members, err := memberRepo.NewRedis(&memberRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create member repository: %v", err)
	}

	projects, err := projectRepo.NewRedis(&projectRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create project repository: %v", err)
	}

	guilds, err := guildRepo.NewRedis(&guildRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create guild repository: %v", err)
	}

	// Initialize attendance service
	attendanceSvc, err := attendance.NewService(&attendance.Config{
		SessionRepo:   sessions,
		MemberRepo:    members,
		ProjectRepo:   projects,
		GuildRepo:     guilds,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create attendance service: %v", err)
	}

	// Initialize report service
	reportSvc, err := report.NewService(&report.Config{
		SessionRepo: sessions,
		Clock:       &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create report service: %v", err)
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		log.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// Get application ID for the bot
	applicationID := getEnv("APPLICATION_ID", "")

	// Get optional guild ID for development
	guildID := getEnv("GUILD_ID", "")

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Token:             discordToken,
		ApplicationID:     applicationID,
		GuildID:           guildID,
		AttendanceService: attendanceSvc,
		ReportService:     reportSvc,
		Clock:             &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Start the liveness sweeper once the bot can deliver prompts
	sweeper, err := liveness.New(&liveness.Config{
		Attendance: attendanceSvc,
		Notifier:   bot.Notifier(),
	})
	if err != nil {
		log.Fatalf("Failed to create liveness sweeper: %v", err)
	}

	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start liveness sweeper: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Stop the sweeper before the bot so no prompt races the shutdown
	sweeper.Stop()

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
