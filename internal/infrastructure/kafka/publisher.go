package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/atelie-design/pedido-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (k *KafkaPublisher) Publish(event PedidoEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return k.writer.WriteMessages(context.Background(), kafka.Message{
		Key:   []byte(event.PedidoID),
		Value: msg,
		Time:  time.Now(),
	})
}

// Notify adapts the domain notification port onto the kafka writer.
func (k *KafkaPublisher) Notify(event domain.NotificationEvent) error {
	return k.Publish(PedidoEvent{
		PedidoID:  event.PedidoID,
		Protocolo: event.Protocolo,
		Event:     event.Event,
		Status:    string(event.Status),
		Email:     event.Email,
	})
}

func (k *KafkaPublisher) Close() error {
	return k.writer.Close()
}
