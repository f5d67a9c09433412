package services

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/harshXitachi/winmicro-wallet/internal/logger"
	"github.com/harshXitachi/winmicro-wallet/internal/models"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// publishTransaction publishes a ledger movement to Kafka. Publishing is
// best-effort: a broker failure never fails the operation that produced the
// event.
func publishTransaction(ctx context.Context, writer KafkaWriter, event models.TransactionEvent) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", event.TransactionID, "amount", event.Amount)
	}
}
