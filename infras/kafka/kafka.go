package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"hotel/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// Client publishes activity events. A disabled client accepts and drops every message.
type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Close() error
}

type kafkaClientImpl struct {
	config *config.Config
	writer *kafkaGo.Writer
}

type noopClient struct{}

func (noopClient) SendMessages(_ context.Context, _ string, _ ...Message) error {
	return nil
}

func (noopClient) Close() error {
	return nil
}

func New(config *config.Config) Client {
	if !config.Kafka.Enable {
		log.Info().Msg("Kafka publishing disabled")

		return noopClient{}
	}

	transport := &kafkaGo.Transport{}

	if config.Kafka.SASL.Username != "" {
		var mechanism sasl.Mechanism = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}

		transport.SASL = mechanism
	}

	address := kafkaGo.TCP(config.Kafka.Brokers...)

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		writer: &kafkaGo.Writer{
			Addr:                   address,
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			AllowAutoTopicCreation: true,
			Async:                  true,
		},
	}
}

// Topic prefixes name with the configured topic prefix.
func Topic(config *config.Config, name string) string {
	prefix := strings.TrimSuffix(config.Kafka.TopicPrefix, ".")
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	msgs := make([]kafkaGo.Message, 0, len(messages))
	fullTopic := Topic(k.config, topic)

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", fullTopic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msg.Topic = fullTopic
		msgs = append(msgs, msg)
	}

	err = k.writer.WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", fullTopic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", fullTopic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	return k.writer.Close() //nolint:wrapcheck
}
