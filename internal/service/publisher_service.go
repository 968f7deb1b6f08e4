package service

import (
	"context"

	"course-mentor-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	Publish(ctx context.Context, payload []byte) error
}

type publisherService struct {
	publisher message.Publisher
	topic     string
	log       logger.ILogger
}

func NewPublisherService(publisher message.Publisher, topic string, log logger.ILogger) IPublisherService {
	return &publisherService{
		publisher: publisher,
		topic:     topic,
		log:       log,
	}
}

func (s *publisherService) Publish(_ context.Context, payload []byte) error {
	msg := message.NewMessage(watermill.NewUUID(), payload)

	if err := s.publisher.Publish(s.topic, msg); err != nil {
		s.log.Error("PublisherService", "failed to publish message", map[string]interface{}{
			"topic": s.topic,
			"error": err.Error(),
		})
		return err
	}

	s.log.Debug("PublisherService", "message published", map[string]interface{}{
		"topic":      s.topic,
		"message_id": msg.UUID,
	})
	return nil
}
