package service

import (
	"context"
	"encoding/json"

	"course-mentor-be/internal/dto"
	"course-mentor-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the turn analytics topic. For now it only logs the
// processed turns; it is the hook point for future analytics sinks.
type consumerService struct {
	subscriber message.Subscriber
	topic      string
	log        logger.ILogger
}

func NewConsumerService(subscriber message.Subscriber, topic string, log logger.ILogger) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topic:      topic,
		log:        log,
	}
}

func (s *consumerService) Consume(ctx context.Context) error {
	messages, err := s.subscriber.Subscribe(ctx, s.topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.handle(msg)
		}
	}()

	s.log.Info("ConsumerService", "consuming turn events", map[string]interface{}{
		"topic": s.topic,
	})
	return nil
}

func (s *consumerService) handle(msg *message.Message) {
	defer msg.Ack()

	var turn dto.TurnProcessedMessage
	if err := json.Unmarshal(msg.Payload, &turn); err != nil {
		s.log.Warn("ConsumerService", "dropping malformed turn event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	s.log.Info("ConsumerService", "turn processed", map[string]interface{}{
		"user_id":      turn.UserId,
		"intent":       turn.Intent,
		"search_tags":  turn.SearchTags,
		"result_count": turn.ResultCount,
	})
}
