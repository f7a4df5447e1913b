package checkout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// SubmissionsTopic carries assembled order payloads to the delivery channel.
const SubmissionsTopic = "order-submissions"

// Publisher hands a finished order payload to the external delivery channel.
// The engine's responsibility ends here; delivery outcome handling is the
// caller's problem.
type Publisher interface {
	Publish(ctx context.Context, payload *domain.OrderPayload) error
}

type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  SubmissionsTopic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, payload *domain.OrderPayload) error {
	msg, err := newSubmissionMessage(payload)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// newSubmissionMessage serializes a payload the way the storefront form
// hands it off: the full JSON blob as the value, the order total and the
// reply-to address as headers, a fresh submission id as the key.
func newSubmissionMessage(payload *domain.OrderPayload) (kafka.Message, error) {
	value, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal order payload: %w", err)
	}
	return kafka.Message{
		Key:   []byte(uuid.New().String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "reply_to", Value: []byte(payload.Customer.Email)},
			{Key: "order_total", Value: []byte(domain.AmountString(payload.Total))},
		},
	}, nil
}
