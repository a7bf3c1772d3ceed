package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
)

// Kafka publishes events as JSON messages keyed by user, so all events of
// one user land on the same partition in order.
type Kafka struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafka connects a synchronous producer to the brokers.
func NewKafka(brokers []string, topic string) (*Kafka, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer failed: %w", err)
	}

	return NewKafkaWithProducer(producer, topic), nil
}

func NewKafkaWithProducer(producer sarama.SyncProducer, topic string) *Kafka {
	return &Kafka{producer: producer, topic: topic}
}

func (k *Kafka) Publish(_ context.Context, events ...Event) error {
	messages := make([]*sarama.ProducerMessage, 0, len(events))

	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encoding event %s failed: %w", e.ID, err)
		}

		messages = append(messages, &sarama.ProducerMessage{
			Topic: k.topic,
			Key:   sarama.StringEncoder(e.UserID.String()),
			Value: sarama.ByteEncoder(value),
			Headers: []sarama.RecordHeader{
				{Key: []byte("event-type"), Value: []byte(e.Type)},
			},
		})
	}

	if len(messages) == 0 {
		return nil
	}

	return k.producer.SendMessages(messages)
}

func (k *Kafka) Close() error {
	return k.producer.Close()
}
