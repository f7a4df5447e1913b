package orders

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/Mykyta-G/Webbshop/internal/checkout"
	"github.com/Mykyta-G/Webbshop/internal/domain"
)

// Consumer archives submitted order payloads. The submission id (message
// key) becomes the order id, so a redelivered message is skipped instead of
// archived twice.
type Consumer struct {
	repo   OrderRepository
	reader *kafka.Reader
}

func NewConsumer(repo OrderRepository, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    checkout.SubmissionsTopic,
		GroupID:  "orders-worker",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{repo, reader}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("error closing kafka reader: %v", err)
	}
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("error reading message: %v", err)
		return
	}
	c.handleMessage(ctx, m)
}

func (c *Consumer) handleMessage(ctx context.Context, m kafka.Message) {
	var payload domain.OrderPayload
	if err := json.Unmarshal(m.Value, &payload); err != nil {
		log.Printf("error parsing message: %v", err)
		return
	}

	submissionID, err := uuid.Parse(string(m.Key))
	if err != nil {
		log.Printf("invalid submission id %q: %v", string(m.Key), err)
		return
	}

	order := &domain.Order{
		ID:        submissionID,
		Email:     payload.Customer.Email,
		Customer:  payload.Customer,
		Total:     payload.Total,
		Status:    domain.OrderStatusReceived,
		Items:     payload.Items,
		CreatedAt: payload.CreatedAt,
	}

	if err := c.repo.CreateOrder(ctx, order); err != nil {
		if errors.Is(err, ErrDuplicateSubmission) {
			log.Printf("order for submission %s already exists, skipping", submissionID)
			return
		}
		log.Printf("failed to create order for submission %s: %v", submissionID, err)
		return
	}

	log.Printf("order %s archived for %s", order.ID, order.Email)
}
