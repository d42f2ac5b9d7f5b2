package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/J33rry/predusk/adapters/event"
	"github.com/J33rry/predusk/adapters/persistence"
	skillsUC "github.com/J33rry/predusk/internal/application/usecase/skills"
	"github.com/J33rry/predusk/internal/config"
	domainEvent "github.com/J33rry/predusk/internal/domain/event"
	"github.com/J33rry/predusk/pkg/logger"
)

const topSkillsCacheTTL = 5 * time.Minute

// The worker keeps the top-skills cache warm: every profile event triggers
// a recompute so readers rarely hit a cold cache.
func main() {
	fmt.Println("Starting Predusk Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		log.Fatalf("FATAL: cannot connect Redis: %v", err)
	}
	defer redisClient.Close()

	skillRepo := persistence.NewPostgresSkillRepo(dbPool, appLogger)
	skillsCache := persistence.NewRedisSkillsCache(redisClient, topSkillsCacheTTL, appLogger)
	topSkillsUseCase := skillsUC.NewTopSkillsUseCase(skillRepo, skillsCache, appLogger)

	profileConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicProfileEvents,
		GroupID:  "skills-refresher-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer profileConsumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicProfileEvents)

	ctx := context.Background()
	for {
		msg, err := profileConsumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload domainEvent.ProfileEvent
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(profileConsumer, msg)
			continue
		}

		log.Printf("Processing event: [%s] for ProfileID: %s", payload.EventType, payload.ProfileID)

		if _, err := topSkillsUseCase.Refresh(ctx); err != nil {
			log.Printf("ERROR: Failed to refresh skills ranking: %v", err)
			continue
		}

		commitMessage(profileConsumer, msg)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
