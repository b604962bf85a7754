package service

import (
	"context"
	"encoding/json"

	"agri-solve-be/internal/dto"
	"agri-solve-be/internal/pkg/logger"
	"agri-solve-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// IConsumerService drains the scan bus and maintains the per-crop disease
// counters. It runs for the lifetime of the process.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		log:        log,
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
	var payload dto.ScanRecordedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal scan message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // malformed messages are not retriable
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CropStatRepository().RecordScan(ctx, payload.CropType, payload.Diagnosis, payload.SeenAt); err != nil {
		cs.log.Error("consumer", "failed to record crop stat", map[string]interface{}{
			"scan_id": payload.ScanId.String(),
			"error":   err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("consumer", "crop stat recorded", map[string]interface{}{
		"crop_type": payload.CropType,
		"diagnosis": payload.Diagnosis,
	})
	msg.Ack()
}
