package kafka_test

import (
	"context"
	"testing"

	"hotel/config"
	"hotel/infras/kafka"

	"github.com/stretchr/testify/assert"
)

func TestToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "emp-1", Value: map[string]any{"amount": "20.00"}}

	msg, err := message.ToKafkaMessage()

	assert.NoError(t, err)
	assert.Equal(t, []byte("emp-1"), msg.Key)
	assert.JSONEq(t, `{"amount":"20.00"}`, string(msg.Value))
}

func TestToKafkaMessage_Unmarshalable(t *testing.T) {
	message := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := message.ToKafkaMessage()

	assert.Error(t, err)
}

func TestTopic(t *testing.T) {
	cfg := &config.Config{}

	assert.Equal(t, "sale.recorded", kafka.Topic(cfg, "sale.recorded"))

	cfg.Kafka.TopicPrefix = "hotel."
	assert.Equal(t, "hotel.sale.recorded", kafka.Topic(cfg, "sale.recorded"))
}

func TestNew_Disabled(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.NoError(t, client.SendMessages(context.Background(), "sale.recorded", kafka.Message{Key: "k", Value: 1}))
	assert.NoError(t, client.Close())
}
