package service

import (
	"context"
	"encoding/json"
	"time"

	"airline-support-be/internal/dto"
	"airline-support-be/internal/pkg/logger"
	"airline-support-be/pkg/events"
	pkgNats "airline-support-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains conversation turn messages off the in-process
// bus and forwards them to NATS, keeping the request path free of
// broker latency.
type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher *pkgNats.Publisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ConversationTurnMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal turn message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.eventPublisher == nil {
		msg.Ack()
		return
	}

	evt := events.NewConversationTurnEvent(payload.SessionId, payload.Intent, payload.Step, payload.Terminal)

	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := cs.eventPublisher.Publish(pubCtx, evt); err != nil {
		cs.logger.Warn("consumer", "failed to forward turn event to NATS", map[string]interface{}{
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		// Turn events are telemetry; dropping one beats redelivery loops.
	}
	msg.Ack()
}
