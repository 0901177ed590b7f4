package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"

	"studio-api/internal/logger"
	"studio-api/internal/models"
)

const (
	TopicBookingCreated       = "booking.created"
	TopicBookingStatusChanged = "booking.status-changed"
	TopicContactReceived      = "contact.received"
)

// BookingCreatedEvent is published when a public booking submission is
// accepted and persisted.
type BookingCreatedEvent struct {
	BookingID   int64  `json:"bookingId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	ServiceType string `json:"serviceType"`
	Budget      int    `json:"budget"`
	Timestamp   int64  `json:"timestamp"`
}

// BookingStatusChangedEvent is published when an administrator moves a
// booking to a new lifecycle status.
type BookingStatusChangedEvent struct {
	BookingID int64                `json:"bookingId"`
	OldStatus models.BookingStatus `json:"oldStatus"`
	NewStatus models.BookingStatus `json:"newStatus"`
	Timestamp int64                `json:"timestamp"`
}

// ContactReceivedEvent is published when a public contact message is stored.
type ContactReceivedEvent struct {
	MessageID int64  `json:"messageId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Timestamp int64  `json:"timestamp"`
}

// Producer publishes studio lifecycle events. In mock mode events are
// logged instead of sent, which keeps local development broker-free.
type Producer struct {
	producer sarama.SyncProducer
	log      *logger.Logger
	mockMode bool
}

func NewProducer(brokers []string, mockMode bool, log *logger.Logger) (*Producer, error) {
	if mockMode {
		log.LogKafka("INIT", "", "running in mock mode, events will be logged only")
		return &Producer{log: log, mockMode: true}, nil
	}

	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	log.LogKafka("INIT", "", fmt.Sprintf("connected to brokers %v", brokers))
	return &Producer{producer: producer, log: log, mockMode: false}, nil
}

func (p *Producer) PublishBookingCreated(booking *models.Booking) error {
	event := BookingCreatedEvent{
		BookingID:   booking.ID,
		FirstName:   booking.FirstName,
		LastName:    booking.LastName,
		Email:       booking.Email,
		ServiceType: booking.ServiceType,
		Budget:      booking.Budget,
		Timestamp:   time.Now().Unix(),
	}
	return p.publish(TopicBookingCreated, fmt.Sprintf("%d", booking.ID), event)
}

func (p *Producer) PublishBookingStatusChanged(bookingID int64, oldStatus, newStatus models.BookingStatus) error {
	event := BookingStatusChangedEvent{
		BookingID: bookingID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: time.Now().Unix(),
	}
	return p.publish(TopicBookingStatusChanged, fmt.Sprintf("%d", bookingID), event)
}

func (p *Producer) PublishContactReceived(msg *models.ContactMessage) error {
	event := ContactReceivedEvent{
		MessageID: msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Timestamp: time.Now().Unix(),
	}
	return p.publish(TopicContactReceived, fmt.Sprintf("%d", msg.ID), event)
}

func (p *Producer) publish(topic, key string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if p.mockMode {
		p.log.LogKafka("MOCK_PUBLISH", topic, string(payload))
		return nil
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Error("KAFKA", fmt.Sprintf("failed to publish to %s: %v", topic, err))
		return fmt.Errorf("failed to publish event: %w", err)
	}
	p.log.LogKafka("PUBLISH", topic, fmt.Sprintf("partition=%d offset=%d", partition, offset))
	return nil
}

func (p *Producer) Close() error {
	if p.mockMode || p.producer == nil {
		return nil
	}
	return p.producer.Close()
}
