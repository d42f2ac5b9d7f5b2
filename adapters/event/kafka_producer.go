package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/J33rry/predusk/internal/config"
	"github.com/J33rry/predusk/internal/domain/event"
)

const TopicProfileEvents = "profile.events"

type KafkaProducerClient struct {
	ProfileEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	profileWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicProfileEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ProfileEventsWriter: profileWriter,
	}, nil
}

func (c *KafkaProducerClient) PublishProfileEvent(ctx context.Context, payload event.ProfileEvent) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("cannot marshal profile event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.ProfileID.String()),
		Value: value,
	}
	if err := c.ProfileEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("cannot publish profile event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ProfileEventsWriter != nil {
		c.ProfileEventsWriter.Close()
	}
}
